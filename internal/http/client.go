// Package http implements the HTTP transport for the Bill.com API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"

	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// RequestConfig is the credential snapshot attached to a single request.
type RequestConfig struct {
	DevKey    string
	SessionID string
}

// ConfigProvider returns the credential snapshot for the next request. It is
// consulted on every call, so a session renewed between requests is always
// picked up.
type ConfigProvider func() RequestConfig

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport. It owns URL construction, header injection,
// JSON encoding, and translation of error responses into the typed errors of
// the bill package.
type Client struct {
	baseURL    string
	provider   ConfigProvider
	httpClient *retryablehttp.Client
	logger     bill.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger bill.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport-level retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each HTTP request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client for the given base URL. The provider
// may be nil for unauthenticated use.
func NewClient(baseURL string, provider ConfigProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// On exhausted retries the final response must still flow back to Do so
	// the body can be classified, not be swallowed by a "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		provider:   provider,
		httpClient: retryClient,
		userAgent:  "bill-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request and returns the response. Non-2xx responses return
// both the response and a typed error from the bill package.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.provider != nil {
		config := c.provider()
		if config.DevKey != "" {
			httpReq.Header.Set(constants.HeaderDevKey, config.DevKey)
		}

		if config.SessionID != "" {
			httpReq.Header.Set(constants.HeaderSessionID, config.SessionID)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, classifyError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// errorEntry is one element of the API's error array payload.
type errorEntry struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// errorObject is the API's single-object error payload.
type errorObject struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// classifyError turns a non-2xx response body into a typed error. The API
// reports errors as an array of entries, occasionally as a single object, and
// sometimes as plain text. Only the entry array carries messages reliable
// enough to pick a kind from; object and plain-text bodies stay generic.
func classifyError(statusCode int, body []byte) error {
	message, providerCode, fromEntries := extractErrorMessage(statusCode, body)

	apiErr := bill.APIError{
		Message:        message,
		HTTPStatus:     statusCode,
		ProviderStatus: providerCode,
		ResponseData:   body,
	}

	if !fromEntries {
		return &apiErr
	}

	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "session") && strings.Contains(lower, "expired"):
		return &bill.SessionExpiredError{APIError: apiErr}
	case statusCode == http.StatusUnauthorized ||
		strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "authentication"):
		return &bill.AuthenticationError{APIError: apiErr}
	case statusCode == http.StatusNotFound || strings.Contains(lower, "not found"):
		return &bill.NotFoundError{APIError: apiErr}
	case statusCode == http.StatusBadRequest ||
		strings.Contains(lower, "invalid") ||
		strings.Contains(lower, "required"):
		return &bill.ValidationError{APIError: apiErr}
	default:
		return &apiErr
	}
}

// extractErrorMessage pulls a human-readable message and provider code out of
// the error payload, falling back to the raw text and then to a generic
// message. The third return reports whether the message came from the API's
// error-entry array.
func extractErrorMessage(statusCode int, body []byte) (string, int, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		// A failed status with an empty body still reports as an error.
		return fmt.Sprintf("request failed with status %d", statusCode), 0, false
	}

	var entries []errorEntry
	if err := json.Unmarshal(trimmed, &entries); err == nil && len(entries) > 0 {
		if entries[0].Message != "" {
			return entries[0].Message, entries[0].Code, true
		}
	}

	var obj errorObject
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		if obj.Message != "" {
			return obj.Message, 0, false
		}

		if obj.Err != "" {
			return obj.Err, 0, false
		}
	}

	return string(trimmed), 0, false
}
