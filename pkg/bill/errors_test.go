package bill_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-io/bill-client/pkg/bill"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &bill.APIError{Message: "Something went wrong", HTTPStatus: 500}
	assert.Equal(t, "Something went wrong (status: 500)", err.Error())
}

func TestConfigurationError_Error(t *testing.T) {
	t.Parallel()

	err := &bill.ConfigurationError{Message: "credentials are required"}
	assert.Equal(t, "credentials are required", err.Error())
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	authErr := &bill.AuthenticationError{APIError: bill.APIError{Message: "bad credentials", HTTPStatus: 401}}
	sessionErr := &bill.SessionExpiredError{APIError: bill.APIError{Message: "session expired", HTTPStatus: 401}}
	notFoundErr := &bill.NotFoundError{APIError: bill.APIError{Message: "no such vendor", HTTPStatus: 404}}
	validationErr := &bill.ValidationError{APIError: bill.APIError{Message: "name is required", HTTPStatus: 400}}
	configErr := &bill.ConfigurationError{Message: "credentials are required"}
	plainErr := errors.New("boom")

	tests := []struct {
		name    string
		helper  func(error) bool
		matches error
		others  []error
	}{
		{
			name:    "IsAuthentication",
			helper:  bill.IsAuthentication,
			matches: authErr,
			others:  []error{sessionErr, notFoundErr, validationErr, configErr, plainErr},
		},
		{
			name:    "IsSessionExpired",
			helper:  bill.IsSessionExpired,
			matches: sessionErr,
			others:  []error{authErr, notFoundErr, validationErr, configErr, plainErr},
		},
		{
			name:    "IsNotFound",
			helper:  bill.IsNotFound,
			matches: notFoundErr,
			others:  []error{authErr, sessionErr, validationErr, configErr, plainErr},
		},
		{
			name:    "IsValidation",
			helper:  bill.IsValidation,
			matches: validationErr,
			others:  []error{authErr, sessionErr, notFoundErr, configErr, plainErr},
		},
		{
			name:    "IsConfiguration",
			helper:  bill.IsConfiguration,
			matches: configErr,
			others:  []error{authErr, sessionErr, notFoundErr, validationErr, plainErr},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, testCase.helper(testCase.matches))
			assert.True(t, testCase.helper(fmt.Errorf("listing vendors: %w", testCase.matches)))

			for _, other := range testCase.others {
				assert.False(t, testCase.helper(other))
			}

			assert.False(t, testCase.helper(nil))
		})
	}
}

func TestSpecializedErrorsExposeAPIError(t *testing.T) {
	t.Parallel()

	base := bill.APIError{
		Message:      "no such vendor",
		HTTPStatus:   404,
		ResponseData: []byte(`[{"message":"no such vendor"}]`),
	}

	tests := []struct {
		name string
		err  error
	}{
		{name: "authentication", err: &bill.AuthenticationError{APIError: base}},
		{name: "session expired", err: &bill.SessionExpiredError{APIError: base}},
		{name: "not found", err: &bill.NotFoundError{APIError: base}},
		{name: "validation", err: &bill.ValidationError{APIError: base}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("getting vendor: %w", testCase.err)

			var apiErr *bill.APIError

			require.ErrorAs(t, wrapped, &apiErr)
			assert.Equal(t, 404, apiErr.HTTPStatus)
			assert.JSONEq(t, `[{"message":"no such vendor"}]`, string(apiErr.ResponseData))
		})
	}

	wrapped := fmt.Errorf("getting vendor: %w", &bill.NotFoundError{APIError: base})

	var notFound *bill.NotFoundError

	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, 404, notFound.HTTPStatus)
}
