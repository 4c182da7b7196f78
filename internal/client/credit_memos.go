package client

import (
	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// NewCreditMemosClient creates a new credit memos client.
func NewCreditMemosClient(client *Client) bill.CreditMemosClient {
	return newResourceClient[bill.CreditMemo, bill.CreditMemoCreateRequest, bill.CreditMemoUpdateRequest](
		client, constants.CreditMemosPath, "credit memo", "credit memos", "creditMemos")
}
