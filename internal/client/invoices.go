package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(client *Client) bill.InvoicesClient {
	return newResourceClient[bill.Invoice, bill.InvoiceCreateRequest, bill.InvoiceUpdateRequest](
		client, constants.InvoicesPath, "invoice", "invoices", "invoices")
}
