package constants

import "time"

// Bill.com API endpoints.
const (
	// SandboxBaseURL is the gateway for the Bill.com sandbox environment.
	SandboxBaseURL = "https://gateway.stage.bill.com/connect"

	// ProductionBaseURL is the gateway for the Bill.com production environment.
	ProductionBaseURL = "https://gateway.bill.com/connect"

	// LoginPath is the session creation endpoint.
	LoginPath = "/v3/login"

	// LogoutPath is the session termination endpoint.
	LogoutPath = "/v3/logout"
)

// Entity endpoints.
const (
	// VendorsPath is the vendors resource endpoint.
	VendorsPath = "/v3/vendors"

	// BillsPath is the bills resource endpoint.
	BillsPath = "/v3/bills"

	// InvoicesPath is the invoices resource endpoint.
	InvoicesPath = "/v3/invoices"

	// CustomersPath is the customers resource endpoint.
	CustomersPath = "/v3/customers"

	// PaymentsPath is the payments resource endpoint.
	PaymentsPath = "/v3/payments"

	// CreditMemosPath is the credit memos resource endpoint.
	CreditMemosPath = "/v3/credit-memos"

	// ChartOfAccountsPath is the chart of accounts resource endpoint.
	ChartOfAccountsPath = "/v3/classifications/chart-of-accounts"

	// AccountingClassesPath is the accounting classes resource endpoint.
	AccountingClassesPath = "/v3/classifications/accounting-classes"
)

// HTTP headers carrying credentials.
const (
	// HeaderDevKey carries the developer key on every request.
	HeaderDevKey = "devKey"

	// HeaderSessionID carries the active session id on authenticated requests.
	HeaderSessionID = "sessionId"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of transport retries.
	// Transport level retries are opt-in.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits.
const (
	// MinPageSize is the smallest accepted value for the max list parameter.
	MinPageSize = 1

	// MaxPageSize is the largest accepted value for the max list parameter.
	MaxPageSize = 100

	// DefaultPageSize is the page size used by CLI listings.
	DefaultPageSize = 20
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)
