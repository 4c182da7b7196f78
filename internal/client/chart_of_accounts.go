package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewChartOfAccountsClient creates a new chart of accounts client.
func NewChartOfAccountsClient(client *Client) bill.ChartOfAccountsClient {
	return newResourceClient[bill.ChartOfAccount, bill.ChartOfAccountCreateRequest, bill.ChartOfAccountUpdateRequest](
		client, constants.ChartOfAccountsPath, "chart of accounts entry", "chart of accounts entries", "chartOfAccounts")
}
