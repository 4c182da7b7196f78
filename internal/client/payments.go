package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(client *Client) bill.PaymentsClient {
	return newResourceClient[bill.Payment, bill.PaymentCreateRequest, bill.PaymentUpdateRequest](
		client, constants.PaymentsPath, "payment", "payments", "payments")
}
