package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewVendorsClient creates a new vendors client.
func NewVendorsClient(client *Client) bill.VendorsClient {
	return newResourceClient[bill.Vendor, bill.VendorCreateRequest, bill.VendorUpdateRequest](
		client, constants.VendorsPath, "vendor", "vendors", "vendors")
}
