// Package billclient provides the main entry point for creating Bill.com API clients
package billclient

import (
	"fmt"
	"strings"

	"github.com/ledgerline-io/bill-client/internal/client"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// New creates a new Bill.com API client.
//
// The client is returned without any network traffic: no login happens until
// the first resource operation or an explicit Login call.
func New(config *bill.Config) (bill.Client, error) {
	if config == nil {
		return nil, bill.ErrConfigRequired
	}

	// Normalize an explicit endpoint override
	if config.APIEndpoint != "" {
		endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		config.APIEndpoint = endpoint
	}

	billClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return billClient, nil
}

// NewWithCredentials creates a new client for the given environment using
// username/password credentials.
func NewWithCredentials(environment bill.Environment, creds bill.Credentials) (bill.Client, error) {
	return New(&bill.Config{
		Username:       creds.Username,
		Password:       creds.Password,
		OrganizationID: creds.OrganizationID,
		DevKey:         creds.DevKey,
		Environment:    environment,
	})
}

// NewSandbox creates a new client against the sandbox gateway.
func NewSandbox(creds bill.Credentials) (bill.Client, error) {
	return NewWithCredentials(bill.EnvironmentSandbox, creds)
}

// NewProduction creates a new client against the production gateway.
func NewProduction(creds bill.Credentials) (bill.Client, error) {
	return NewWithCredentials(bill.EnvironmentProduction, creds)
}

// NewWithEndpoint creates a new client against an explicit gateway URL with
// no credentials. Credentials can be supplied later through
// LoginWithCredentials.
func NewWithEndpoint(endpoint string) (bill.Client, error) {
	return New(&bill.Config{
		APIEndpoint: endpoint,
	})
}
