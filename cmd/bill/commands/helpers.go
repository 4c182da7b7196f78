// Package commands implements the bill CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
	"github.com/ledgerline-io/bill-client/pkg/billclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

const jsonIndent = "  "

// clientConfig assembles a bill.Config from flags, environment, and config
// file. The password is never accepted as a flag; it comes from BILL_PASSWORD
// or the config file only.
func clientConfig() *bill.Config {
	config := &bill.Config{
		Username:       viper.GetString("username"),
		Password:       viper.GetString("password"),
		OrganizationID: viper.GetString("org_id"),
		DevKey:         viper.GetString("dev_key"),
		APIEndpoint:    viper.GetString("endpoint"),
		Debug:          viper.GetBool("debug"),
	}

	switch strings.ToLower(viper.GetString("env")) {
	case "production", "prod":
		config.Environment = bill.EnvironmentProduction
	default:
		config.Environment = bill.EnvironmentSandbox
	}

	if viper.GetBool("verbose") || config.Debug {
		config.Logger = newCLILogger(true)
	}

	return config
}

// newClient builds the API client used by every command.
func newClient() (bill.Client, error) {
	client, err := billclient.New(clientConfig())
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return encoder.Close()
}

// filterOps are the operators accepted in --filter specs.
var filterOps = map[string]bill.FilterOp{
	"eq":  bill.FilterEq,
	"ne":  bill.FilterNe,
	"gt":  bill.FilterGt,
	"gte": bill.FilterGte,
	"lt":  bill.FilterLt,
	"lte": bill.FilterLte,
	"sw":  bill.FilterSw,
	"in":  bill.FilterIn,
	"nin": bill.FilterNin,
}

// parseFilterSpecs turns --filter field:op:value specs into typed filters.
// in/nin values are comma-separated.
func parseFilterSpecs(specs []string) ([]bill.Filter, error) {
	filters := make([]bill.Filter, 0, len(specs))

	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFilterSpec, spec)
		}

		op, ok := filterOps[parts[1]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operator %q", constants.ErrInvalidFilterSpec, parts[1])
		}

		if op == bill.FilterIn || op == bill.FilterNin {
			filters = append(filters, bill.ArrayFilter{
				Field:  parts[0],
				Op:     op,
				Values: strings.Split(parts[2], ","),
			})

			continue
		}

		filters = append(filters, bill.ScalarFilter{
			Field: parts[0],
			Op:    op,
			Value: parts[2],
		})
	}

	return filters, nil
}

// parseSortSpecs turns --sort field:asc|desc specs into sort params.
func parseSortSpecs(specs []string) ([]bill.SortParam, error) {
	sorts := make([]bill.SortParam, 0, len(specs))

	for _, spec := range specs {
		field, order, found := strings.Cut(spec, ":")
		if !found || field == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidSortSpec, spec)
		}

		switch order {
		case "asc":
			sorts = append(sorts, bill.SortParam{Field: field, Order: bill.SortAsc})
		case "desc":
			sorts = append(sorts, bill.SortParam{Field: field, Order: bill.SortDesc})
		default:
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidSortSpec, spec)
		}
	}

	return sorts, nil
}
