// Package client implements the bill.Client interface.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/internal/http"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// Client implements the bill.Client interface.
type Client struct {
	config     *bill.Config
	httpClient *http.Client
	baseURL    string
	logger     bill.Logger

	// session is the live session, or nil. It is not synchronized: concurrent
	// logins race last-writer-wins.
	session *bill.Session

	// Resource clients
	vendors           bill.VendorsClient
	bills             bill.BillsClient
	invoices          bill.InvoicesClient
	customers         bill.CustomersClient
	payments          bill.PaymentsClient
	creditMemos       bill.CreditMemosClient
	chartOfAccounts   bill.ChartOfAccountsClient
	accountingClasses bill.AccountingClassesClient
}

// New creates a new Bill.com API client.
func New(config *bill.Config) (*Client, error) {
	if config == nil {
		return nil, bill.ErrConfigRequired
	}

	baseURL, err := resolveBaseURL(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:  config,
		baseURL: baseURL,
		logger:  config.Logger,
	}

	httpOpts := createHTTPClientOptions(config)
	client.httpClient = http.NewClient(baseURL, client.requestConfig, httpOpts...)

	client.initializeResourceClients()

	return client, nil
}

// resolveBaseURL picks the gateway URL from the endpoint override or the
// configured environment.
func resolveBaseURL(config *bill.Config) (string, error) {
	if config.APIEndpoint != "" {
		return config.APIEndpoint, nil
	}

	switch config.Environment {
	case bill.EnvironmentProduction:
		return constants.ProductionBaseURL, nil
	case bill.EnvironmentSandbox, "":
		return constants.SandboxBaseURL, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrUnknownEnvironment, config.Environment)
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *bill.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// requestConfig is the transport's ConfigProvider. It snapshots the devKey
// and session id at call time, so a session renewed between requests is
// always sent on the next one.
func (c *Client) requestConfig() http.RequestConfig {
	requestConfig := http.RequestConfig{DevKey: c.config.DevKey}

	if c.session != nil {
		requestConfig.SessionID = c.session.SessionID
	}

	return requestConfig
}

// loginRequest is the payload for POST /v3/login.
type loginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	OrganizationID string `json:"organizationId"`
	DevKey         string `json:"devKey"`
}

// Login implements bill.Client.Login. It always performs a fresh network
// login and replaces any existing session.
func (c *Client) Login(ctx context.Context) (*bill.Session, error) {
	if !c.config.HasCredentials() {
		return nil, missingCredentialsError()
	}

	request := loginRequest{
		Username:       c.config.Username,
		Password:       c.config.Password,
		OrganizationID: c.config.OrganizationID,
		DevKey:         c.config.DevKey,
	}

	resp, err := c.httpClient.Post(ctx, constants.LoginPath, request)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	var session bill.Session

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing login response: %w", err)
	}

	c.session = &session

	if c.logger != nil {
		c.logger.Info("logged in", map[string]interface{}{
			"organizationId": session.OrganizationID,
			"userId":         session.UserID,
		})
	}

	return c.Session(), nil
}

// LoginWithCredentials implements bill.Client.LoginWithCredentials.
func (c *Client) LoginWithCredentials(ctx context.Context, creds bill.Credentials) (*bill.Session, error) {
	c.config.Username = creds.Username
	c.config.Password = creds.Password
	c.config.OrganizationID = creds.OrganizationID
	c.config.DevKey = creds.DevKey

	return c.Login(ctx)
}

// Logout implements bill.Client.Logout. The network call is best-effort: the
// local session is cleared regardless of its outcome.
func (c *Client) Logout(ctx context.Context) error {
	if !c.IsLoggedIn() {
		return nil
	}

	_, err := c.httpClient.Post(ctx, constants.LogoutPath, nil)
	if err != nil && c.logger != nil {
		c.logger.Warn("logout request failed, clearing session anyway", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.session = nil

	return nil
}

// EnsureLoggedIn implements bill.Client.EnsureLoggedIn.
func (c *Client) EnsureLoggedIn(ctx context.Context) error {
	if c.IsLoggedIn() {
		return nil
	}

	if !c.config.HasCredentials() {
		return missingCredentialsError()
	}

	if c.config.DisableAutoLogin {
		return &bill.AuthenticationError{APIError: bill.APIError{
			Message: "not logged in and auto-login is disabled",
		}}
	}

	_, err := c.Login(ctx)

	return err
}

// IsLoggedIn implements bill.Client.IsLoggedIn.
func (c *Client) IsLoggedIn() bool {
	return c.session != nil && c.session.SessionID != ""
}

// Session implements bill.Client.Session.
func (c *Client) Session() *bill.Session {
	if c.session == nil {
		return nil
	}

	session := *c.session

	return &session
}

// WithAutoRetry implements bill.Client.WithAutoRetry. On a session expiry it
// logs in once and retries the operation exactly once; any other error, and
// any error from the retry itself, is returned as-is.
func (c *Client) WithAutoRetry(ctx context.Context, operation func(ctx context.Context) error) error {
	err := c.EnsureLoggedIn(ctx)
	if err != nil {
		return err
	}

	err = operation(ctx)
	if err == nil || !bill.IsSessionExpired(err) || c.config.DisableAutoLogin {
		return err
	}

	c.session = nil

	_, err = c.Login(ctx)
	if err != nil {
		return err
	}

	return operation(ctx)
}

// missingCredentialsError is the local precondition failure returned when the
// client holds no credentials at all.
func missingCredentialsError() *bill.ConfigurationError {
	return &bill.ConfigurationError{
		Message: "credentials are required: set username, password, organizationId, and devKey",
	}
}

// Resource client accessors

// Vendors implements bill.Client.Vendors.
func (c *Client) Vendors() bill.VendorsClient {
	return c.vendors
}

// Bills implements bill.Client.Bills.
func (c *Client) Bills() bill.BillsClient {
	return c.bills
}

// Invoices implements bill.Client.Invoices.
func (c *Client) Invoices() bill.InvoicesClient {
	return c.invoices
}

// Customers implements bill.Client.Customers.
func (c *Client) Customers() bill.CustomersClient {
	return c.customers
}

// Payments implements bill.Client.Payments.
func (c *Client) Payments() bill.PaymentsClient {
	return c.payments
}

// CreditMemos implements bill.Client.CreditMemos.
func (c *Client) CreditMemos() bill.CreditMemosClient {
	return c.creditMemos
}

// ChartOfAccounts implements bill.Client.ChartOfAccounts.
func (c *Client) ChartOfAccounts() bill.ChartOfAccountsClient {
	return c.chartOfAccounts
}

// AccountingClasses implements bill.Client.AccountingClasses.
func (c *Client) AccountingClasses() bill.AccountingClassesClient {
	return c.accountingClasses
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.vendors = NewVendorsClient(c)
	c.bills = NewBillsClient(c)
	c.invoices = NewInvoicesClient(c)
	c.customers = NewCustomersClient(c)
	c.payments = NewPaymentsClient(c)
	c.creditMemos = NewCreditMemosClient(c)
	c.chartOfAccounts = NewChartOfAccountsClient(c)
	c.accountingClasses = NewAccountingClassesClient(c)
}
