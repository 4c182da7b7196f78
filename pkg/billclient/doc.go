// Package billclient provides the primary entry point for constructing a
// Bill.com API client that implements the bill.Client interface.
//
// It layers configuration, HTTP transport, and session management on top of
// the resource interfaces and types defined in the bill package. Most
// applications should import billclient to build a client, then use the
// returned bill.Client to access resource-specific clients, for example
// Vendors(), Invoices(), Payments(), etc.
//
// Quick start
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
//
//	  cli, err := billclient.New(&bill.Config{
//	    Username:       "user@example.com",
//	    Password:       "pass",
//	    OrganizationID: "0081234567890123456",
//	    DevKey:         "01ABCDEFGHIJKLMNOPQR",
//	    Environment:    bill.EnvironmentSandbox,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // The first operation logs in automatically.
//	  invoices, err := cli.Invoices().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// # Sessions
//
// Construction performs no network traffic. The first resource operation
// logs in with the configured credentials, and an expired session is renewed
// transparently with a single retry. Set Config.DisableAutoLogin to manage
// the session explicitly through Login and Logout.
//
// # Helpers
//
// The package also provides convenience constructors NewWithCredentials,
// NewSandbox, NewProduction, and NewWithEndpoint that wrap New with the
// appropriate configuration.
package billclient
