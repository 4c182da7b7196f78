//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/ledgerline-io/bill-client/pkg/bill"
	"github.com/ledgerline-io/bill-client/pkg/billclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Username       string
	Password       string
	OrganizationID string
	DevKey         string
	Endpoint       string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Username:       os.Getenv("BILL_USERNAME"),
		Password:       os.Getenv("BILL_PASSWORD"),
		OrganizationID: os.Getenv("BILL_ORG_ID"),
		DevKey:         os.Getenv("BILL_DEV_KEY"),
		Endpoint:       os.Getenv("BILL_ENDPOINT"),
	}
}

// Complete reports whether every required credential is set.
func (c *TestConfig) Complete() bool {
	return c.Username != "" && c.Password != "" && c.OrganizationID != "" && c.DevKey != ""
}

// newSandboxClient builds a client against the sandbox gateway, or skips the
// test when credentials are missing from the environment.
func newSandboxClient(t *testing.T) bill.Client {
	t.Helper()

	config := LoadTestConfig()
	if !config.Complete() {
		t.Skip("BILL_USERNAME, BILL_PASSWORD, BILL_ORG_ID, and BILL_DEV_KEY must be set for integration tests")
	}

	client, err := billclient.New(&bill.Config{
		Username:       config.Username,
		Password:       config.Password,
		OrganizationID: config.OrganizationID,
		DevKey:         config.DevKey,
		Environment:    bill.EnvironmentSandbox,
		APIEndpoint:    config.Endpoint,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}
