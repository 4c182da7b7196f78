package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewBillsClient creates a new bills client.
func NewBillsClient(client *Client) bill.BillsClient {
	return newResourceClient[bill.Bill, bill.BillCreateRequest, bill.BillUpdateRequest](
		client, constants.BillsPath, "bill", "bills", "bills")
}
