package bill

import (
	"errors"
	"fmt"
)

// APIError represents an error returned by the Bill.com API.
//
// Every network failure surfaced by this library is either an *APIError or one
// of the specialized kinds below that embed it. ResponseData carries the raw
// response body so callers can inspect provider details beyond the message.
type APIError struct {
	Message        string `json:"message"        yaml:"message"`
	HTTPStatus     int    `json:"httpStatus"     yaml:"httpStatus"`
	ProviderStatus int    `json:"providerStatus" yaml:"providerStatus"`
	ResponseData   []byte `json:"-"              yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.HTTPStatus)
}

// AuthenticationError indicates invalid credentials, devKey, or organization,
// or use of the client while not logged in with auto-login disabled.
type AuthenticationError struct {
	APIError
}

// Unwrap exposes the embedded APIError to errors.As.
func (e *AuthenticationError) Unwrap() error {
	return &e.APIError
}

// SessionExpiredError indicates the provider rejected a stale session token.
// Bill.com uses HTTP 401 for both this and AuthenticationError; the two are
// distinguished by the provider's error message.
type SessionExpiredError struct {
	APIError
}

// Unwrap exposes the embedded APIError to errors.As.
func (e *SessionExpiredError) Unwrap() error {
	return &e.APIError
}

// NotFoundError indicates the referenced resource id does not exist.
type NotFoundError struct {
	APIError
}

// Unwrap exposes the embedded APIError to errors.As.
func (e *NotFoundError) Unwrap() error {
	return &e.APIError
}

// ValidationError indicates the provider rejected a malformed request payload.
type ValidationError struct {
	APIError
}

// Unwrap exposes the embedded APIError to errors.As.
func (e *ValidationError) Unwrap() error {
	return &e.APIError
}

// ConfigurationError is a local precondition failure: the client was used
// before any credentials were supplied. It never originates from the network.
type ConfigurationError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Message
}

// Static errors for local precondition failures.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrMaxOutOfRange  = errors.New("max must be between 1 and 100")
)

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	var target *AuthenticationError

	return errors.As(err, &target)
}

// IsSessionExpired checks if the error is a session expiry error.
func IsSessionExpired(err error) bool {
	var target *SessionExpiredError

	return errors.As(err, &target)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var target *NotFoundError

	return errors.As(err, &target)
}

// IsValidation checks if the error is a provider-side validation error.
func IsValidation(err error) bool {
	var target *ValidationError

	return errors.As(err, &target)
}

// IsConfiguration checks if the error is a local configuration error.
func IsConfiguration(err error) bool {
	var target *ConfigurationError

	return errors.As(err, &target)
}
