package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ledgerline-io/bill-client/internal/constants"
	billhttp "github.com/ledgerline-io/bill-client/internal/http"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// validateTarget pairs an entity endpoint with the typed model the library
// decodes it into.
type validateTarget struct {
	name  string
	path  string
	model interface{}
}

func validateTargets() []validateTarget {
	return []validateTarget{
		{name: "vendors", path: constants.VendorsPath, model: bill.Vendor{}},
		{name: "bills", path: constants.BillsPath, model: bill.Bill{}},
		{name: "invoices", path: constants.InvoicesPath, model: bill.Invoice{}},
		{name: "customers", path: constants.CustomersPath, model: bill.Customer{}},
		{name: "payments", path: constants.PaymentsPath, model: bill.Payment{}},
		{name: "credit-memos", path: constants.CreditMemosPath, model: bill.CreditMemo{}},
		{name: "chart-of-accounts", path: constants.ChartOfAccountsPath, model: bill.ChartOfAccount{}},
		{name: "accounting-classes", path: constants.AccountingClassesPath, model: bill.AccountingClass{}},
	}
}

// NewValidateCommand creates the validate command. It fetches a sample of
// live records per entity and reports top-level JSON fields the typed models
// do not know about, which is how provider schema drift shows up first.
func NewValidateCommand() *cobra.Command {
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check live API records against the client's entity models",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := clientConfig()

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			session, err := client.Login(ctx)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			defer func() {
				_ = client.Logout(ctx)
			}()

			raw := rawTransport(config, session)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Entity", "Records", "Unknown Fields")

			drifted := false

			for _, target := range validateTargets() {
				count, unknown, err := checkTarget(ctx, raw, target, sampleSize)
				if err != nil {
					_ = table.Append(target.name, constants.NotAvailable, err.Error())

					continue
				}

				if len(unknown) > 0 {
					drifted = true
				}

				_ = table.Append(target.name, strconv.Itoa(count), strings.Join(unknown, ", "))
			}

			_ = table.Render()

			if drifted {
				fmt.Println("\nUnknown fields found: the provider schema has drifted ahead of the entity models.")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&sampleSize, "sample", constants.DefaultPageSize, "records to sample per entity")

	return cmd
}

// rawTransport builds a transport that shares the live session but skips the
// typed decoding, so unknown provider fields survive.
func rawTransport(config *bill.Config, session *bill.Session) *billhttp.Client {
	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.SandboxBaseURL
		if config.Environment == bill.EnvironmentProduction {
			baseURL = constants.ProductionBaseURL
		}
	}

	return billhttp.NewClient(baseURL, func() billhttp.RequestConfig {
		return billhttp.RequestConfig{DevKey: config.DevKey, SessionID: session.SessionID}
	})
}

// checkTarget samples one entity and returns the record count and the sorted
// set of top-level fields absent from the typed model.
func checkTarget(ctx context.Context, raw *billhttp.Client, target validateTarget, sampleSize int) (int, []string, error) {
	query := url.Values{}
	query.Set("max", strconv.Itoa(sampleSize))

	resp, err := raw.Get(ctx, target.path, query)
	if err != nil {
		return 0, nil, fmt.Errorf("fetching %s: %w", target.name, err)
	}

	var page struct {
		Results []map[string]interface{} `json:"results"`
	}

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return 0, nil, fmt.Errorf("parsing %s page: %w", target.name, err)
	}

	known := jsonFieldSet(target.model)
	unknown := map[string]struct{}{}

	for _, record := range page.Results {
		for key := range record {
			if _, ok := known[key]; !ok {
				unknown[key] = struct{}{}
			}
		}
	}

	fields := make([]string, 0, len(unknown))
	for field := range unknown {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	return len(page.Results), fields, nil
}

// jsonFieldSet collects the top-level JSON keys a struct model decodes.
func jsonFieldSet(model interface{}) map[string]struct{} {
	fields := map[string]struct{}{}
	modelType := reflect.TypeOf(model)

	for i := 0; i < modelType.NumField(); i++ {
		tag := modelType.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			fields[name] = struct{}{}
		}
	}

	return fields
}
