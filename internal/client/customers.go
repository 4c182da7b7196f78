package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewCustomersClient creates a new customers client.
func NewCustomersClient(client *Client) bill.CustomersClient {
	return newResourceClient[bill.Customer, bill.CustomerCreateRequest, bill.CustomerUpdateRequest](
		client, constants.CustomersPath, "customer", "customers", "customers")
}
