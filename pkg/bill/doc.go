// Package bill provides types, interfaces, and helpers for working with the
// Bill.com v3 API.
//
// # Overview
//
// The bill package defines the domain types (e.g., Vendor, Bill, Invoice,
// Customer, Payment) and the interfaces for resource-oriented clients (e.g.,
// VendorsClient, InvoicesClient). A concrete implementation of these clients
// is provided by the billclient package, which wires configuration, transport,
// and session management. Most consumers should import billclient to construct
// a client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ledgerline-io/bill-client/pkg/bill"
//	  "github.com/ledgerline-io/bill-client/pkg/billclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := billclient.New(&bill.Config{
//	    Username:       "user@example.com",
//	    Password:       "secret",
//	    OrganizationID: "0081234567890123456",
//	    DevKey:         "01ABCDEFGHIJKLMNOPQR",
//	    Environment:    bill.EnvironmentSandbox,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of vendors
//	  vendors, err := cli.Vendors().List(ctx, bill.NewListParams().WithMax(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = vendors
//	}
//
// # Queries and pagination
//
// Use ListParams to express common list options (max, page, sort, filters).
// Filters are built from ScalarFilter and ArrayFilter values and serialized
// into the API's "field:op:value" dialect; values that look like ISO dates are
// quoted automatically. Pagination is cursor based: each ListResponse carries
// NextPage and PrevPage tokens that can be fed back via WithPage. FetchAllPages
// and PageIterator follow the tokens for you:
//
//	all, err := bill.FetchAllPages[bill.Vendor](ctx, cli.Vendors(), nil, bill.DefaultPaginationOptions())
//
// # Errors
//
// API errors are represented by APIError and its specialized variants
// (AuthenticationError, SessionExpiredError, NotFoundError, ValidationError).
// Helpers such as IsNotFound, IsSessionExpired, and IsValidation make it easy
// to branch on common cases.
//
// # Sessions
//
// The Client interface manages the session lifecycle: Login, Logout,
// EnsureLoggedIn, and WithAutoRetry, which transparently re-authenticates and
// retries an operation once when the API reports an expired session. Resource
// operations use WithAutoRetry internally, so an expired session is normally
// invisible to callers.
//
// # Resources
//
// Resource clients follow a consistent CRUD pattern across Bill.com resources
// (Vendors, Bills, Invoices, Customers, Payments, CreditMemos,
// ChartOfAccounts, AccountingClasses): List, Get, Create, CreateMultiple,
// Update, Archive, and Restore. See ResourceClient in client.go for the full
// contract.
package bill
