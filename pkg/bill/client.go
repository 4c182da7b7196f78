package bill

import (
	"context"
	"time"
)

// Client is the entry point for the Bill.com API. Construct one with the
// billclient package, then use the per-entity resource clients.
type Client interface {
	// Login performs a fresh network login with the configured credentials and
	// replaces any existing session. It is called automatically on first use
	// unless auto-login is disabled.
	Login(ctx context.Context) (*Session, error)
	// LoginWithCredentials stores the supplied credentials and logs in.
	// Supports clients constructed without credentials.
	LoginWithCredentials(ctx context.Context, creds Credentials) (*Session, error)
	// Logout ends the session best-effort: transport errors are discarded and
	// the local session is always cleared. No-op when not logged in.
	Logout(ctx context.Context) error
	// EnsureLoggedIn logs in if no session is live and auto-login is enabled.
	EnsureLoggedIn(ctx context.Context) error
	// IsLoggedIn reports whether a session is live.
	IsLoggedIn() bool
	// Session returns a copy of the live session, or nil.
	Session() *Session
	// WithAutoRetry runs operation after EnsureLoggedIn. If the operation
	// fails with a SessionExpiredError and auto-login is enabled, it logs in
	// once and retries the operation exactly once.
	WithAutoRetry(ctx context.Context, operation func(ctx context.Context) error) error

	Vendors() VendorsClient
	Bills() BillsClient
	Invoices() InvoicesClient
	Customers() CustomersClient
	Payments() PaymentsClient
	CreditMemos() CreditMemosClient
	ChartOfAccounts() ChartOfAccountsClient
	AccountingClasses() AccountingClassesClient
}

// ResourceClient is the CRUD contract shared by every entity resource.
//
// T is the entity, C its create request, and U its update request. All
// operations obtain the current session state at call time, so a session
// renewed concurrently is always picked up, and all fail with a
// *ConfigurationError when the client has no credentials configured at all.
type ResourceClient[T, C, U any] interface {
	// List fetches one page of entities. Params may be nil.
	List(ctx context.Context, params *ListParams) (*ListResponse[T], error)
	// Get fetches a single entity by id.
	Get(ctx context.Context, id string) (*T, error)
	// Create creates one entity.
	Create(ctx context.Context, request *C) (*T, error)
	// CreateMultiple creates entities in bulk. The result preserves request
	// order whether the provider returns a bare array or a wrapped object.
	CreateMultiple(ctx context.Context, requests []*C) ([]T, error)
	// Update applies a partial update to an entity.
	Update(ctx context.Context, id string, request *U) (*T, error)
	// Archive archives an entity.
	Archive(ctx context.Context, id string) (*T, error)
	// Restore restores an archived entity.
	Restore(ctx context.Context, id string) (*T, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a bill.Client.
//
// Credentials may be left empty at construction and supplied later through
// LoginWithCredentials; any resource operation before credentials are known
// fails with a *ConfigurationError.
//
// The session field inside the client is not synchronized: concurrent logins
// against one client race last-writer-wins on the session. Callers needing
// strict single-flight login should serialize Login/EnsureLoggedIn themselves.
type Config struct {
	// Username is the Bill.com account username.
	Username string
	// Password is the Bill.com account password.
	Password string
	// OrganizationID selects the organization to log in to.
	OrganizationID string
	// DevKey is the developer key sent with every request.
	DevKey string
	// Environment selects the sandbox or production gateway. Defaults to
	// sandbox. Immutable after construction.
	Environment Environment
	// APIEndpoint overrides the environment base URL. Intended for tests.
	APIEndpoint string
	// DisableAutoLogin turns off the transparent login on first use and on
	// session expiry. When set, operations without a live session fail with
	// an *AuthenticationError instead.
	DisableAutoLogin bool

	// HTTPTimeout bounds each HTTP request. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax is the transport-level retry budget for transient failures
	// (>=500, 429, connection errors). Zero disables transport retries; the
	// library itself never retries beyond the single session renewal.
	RetryMax int
	// RetryWaitMin is the minimum backoff between transport retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between transport retries.
	RetryWaitMax time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

// Credentials returns the credential set currently held by the config.
func (c *Config) Credentials() Credentials {
	return Credentials{
		Username:       c.Username,
		Password:       c.Password,
		OrganizationID: c.OrganizationID,
		DevKey:         c.DevKey,
	}
}

// HasCredentials reports whether any credential field has been supplied.
func (c *Config) HasCredentials() bool {
	return c.Username != "" || c.Password != "" || c.OrganizationID != "" || c.DevKey != ""
}
