package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewAccountingClassesClient creates a new accounting classes client.
func NewAccountingClassesClient(client *Client) bill.AccountingClassesClient {
	return newResourceClient[bill.AccountingClass, bill.AccountingClassCreateRequest, bill.AccountingClassUpdateRequest](
		client, constants.AccountingClassesPath, "accounting class", "accounting classes", "accountingClasses")
}
