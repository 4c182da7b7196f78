package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// entitySpec describes one entity's command group: naming, table layout, and
// how to reach its resource client.
type entitySpec[T, C, U any] struct {
	use      string
	aliases  []string
	short    string
	headers  []string
	row      func(entity T) []string
	resource func(client bill.Client) bill.ResourceClient[T, C, U]
}

// NewEntityCommands creates the per-entity command groups.
func NewEntityCommands() []*cobra.Command {
	return []*cobra.Command{
		newEntityCommand(vendorsSpec()),
		newEntityCommand(billsSpec()),
		newEntityCommand(invoicesSpec()),
		newEntityCommand(customersSpec()),
		newEntityCommand(paymentsSpec()),
		newEntityCommand(creditMemosSpec()),
		newEntityCommand(chartOfAccountsSpec()),
		newEntityCommand(accountingClassesSpec()),
	}
}

func newEntityCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
	}

	cmd.AddCommand(newEntityListCommand(spec))
	cmd.AddCommand(newEntityGetCommand(spec))
	cmd.AddCommand(newEntityCreateCommand(spec))
	cmd.AddCommand(newEntityUpdateCommand(spec))
	cmd.AddCommand(newEntityArchiveCommand(spec))
	cmd.AddCommand(newEntityRestoreCommand(spec))

	return cmd
}

//nolint:funlen // command wiring is mostly flag plumbing
func newEntityListCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	var (
		maxResults  int
		page        string
		filterSpecs []string
		sortSpecs   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.use,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := bill.NewListParams().WithMax(maxResults)

			if page != "" {
				params = params.WithPage(page)
			}

			filters, err := parseFilterSpecs(filterSpecs)
			if err != nil {
				return err
			}

			for _, filter := range filters {
				params = params.WithFilter(filter)
			}

			sorts, err := parseSortSpecs(sortSpecs)
			if err != nil {
				return err
			}

			for _, sort := range sorts {
				params = params.WithSort(sort.Field, sort.Order)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			list, err := spec.resource(client).List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing %s: %w", spec.use, err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(list)
			case OutputFormatYAML:
				return renderYAML(list)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header(toAnySlice(spec.headers)...)

				for _, entity := range list.Results {
					_ = table.Append(toAnySlice(spec.row(entity))...)
				}

				_ = table.Render()

				if list.NextPage != "" {
					fmt.Printf("\nNext page: --page %s\n", list.NextPage)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&maxResults, "max", "m", constants.DefaultPageSize, "maximum results per page (1-100)")
	cmd.Flags().StringVar(&page, "page", "", "page token from a previous response")
	cmd.Flags().StringArrayVarP(&filterSpecs, "filter", "f", nil, "filter as field:op:value (repeatable)")
	cmd.Flags().StringArrayVarP(&sortSpecs, "sort", "s", nil, "sort as field:asc or field:desc (repeatable)")

	return cmd
}

func newEntityGetCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get one of " + spec.use + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			entity, err := spec.resource(client).Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting %s: %w", args[0], err)
			}

			return renderEntity(spec, entity)
		},
	}
}

func newEntityCreateCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one of " + spec.use + " from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var request C

			err := readRequestFile(fromFile, &request)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			entity, err := spec.resource(client).Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("creating: %w", err)
			}

			return renderEntity(spec, entity)
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "path to the request payload (required)")
	_ = cmd.MarkFlagRequired("from-file")

	return cmd
}

func newEntityUpdateCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update one of " + spec.use + " from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var request U

			err := readRequestFile(fromFile, &request)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			entity, err := spec.resource(client).Update(context.Background(), args[0], &request)
			if err != nil {
				return fmt.Errorf("updating %s: %w", args[0], err)
			}

			return renderEntity(spec, entity)
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "path to the request payload (required)")
	_ = cmd.MarkFlagRequired("from-file")

	return cmd
}

func newEntityArchiveCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive one of " + spec.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			entity, err := spec.resource(client).Archive(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("archiving %s: %w", args[0], err)
			}

			return renderEntity(spec, entity)
		},
	}
}

func newEntityRestoreCommand[T, C, U any](spec entitySpec[T, C, U]) *cobra.Command {
	return &cobra.Command{
		Use:   "restore ID",
		Short: "Restore one of " + spec.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			entity, err := spec.resource(client).Restore(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("restoring %s: %w", args[0], err)
			}

			return renderEntity(spec, entity)
		},
	}
}

// renderEntity prints a single entity in the selected output format. A nil
// entity means the API answered without a body.
func renderEntity[T, C, U any](spec entitySpec[T, C, U], entity *T) error {
	if entity == nil {
		fmt.Println("OK (no content returned)")

		return nil
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(entity)
	case OutputFormatYAML:
		return renderYAML(entity)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		headers := spec.headers
		row := spec.row(*entity)

		for i := range headers {
			if i < len(row) {
				_ = table.Append(headers[i], row[i])
			}
		}

		_ = table.Render()
	}

	return nil
}

// readRequestFile decodes a JSON or YAML payload into out. YAML is a
// superset of JSON, so one decoder covers both.
func readRequestFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}

func toAnySlice(values []string) []interface{} {
	anys := make([]interface{}, len(values))
	for i, v := range values {
		anys[i] = v
	}

	return anys
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func vendorsSpec() entitySpec[bill.Vendor, bill.VendorCreateRequest, bill.VendorUpdateRequest] {
	return entitySpec[bill.Vendor, bill.VendorCreateRequest, bill.VendorUpdateRequest]{
		use:     "vendors",
		aliases: []string{"vendor"},
		short:   "Manage vendors",
		headers: []string{"ID", "Name", "Email", "Archived", "Updated"},
		row: func(vendor bill.Vendor) []string {
			return []string{
				vendor.ID, vendor.Name, vendor.Email,
				strconv.FormatBool(vendor.Archived), vendor.UpdatedTime,
			}
		},
		resource: func(client bill.Client) bill.VendorsClient { return client.Vendors() },
	}
}

func billsSpec() entitySpec[bill.Bill, bill.BillCreateRequest, bill.BillUpdateRequest] {
	return entitySpec[bill.Bill, bill.BillCreateRequest, bill.BillUpdateRequest]{
		use:     "bills",
		aliases: []string{"bill"},
		short:   "Manage bills (accounts payable)",
		headers: []string{"ID", "Vendor", "Invoice #", "Amount", "Due", "Status"},
		row: func(b bill.Bill) []string {
			return []string{
				b.ID, b.VendorName, b.Invoice.InvoiceNumber,
				formatAmount(b.Amount), b.DueDate, string(b.PaymentStatus),
			}
		},
		resource: func(client bill.Client) bill.BillsClient { return client.Bills() },
	}
}

func invoicesSpec() entitySpec[bill.Invoice, bill.InvoiceCreateRequest, bill.InvoiceUpdateRequest] {
	return entitySpec[bill.Invoice, bill.InvoiceCreateRequest, bill.InvoiceUpdateRequest]{
		use:     "invoices",
		aliases: []string{"invoice"},
		short:   "Manage invoices (accounts receivable)",
		headers: []string{"ID", "Invoice #", "Customer", "Amount", "Due", "Status"},
		row: func(invoice bill.Invoice) []string {
			return []string{
				invoice.ID, invoice.InvoiceNumber, invoice.CustomerID,
				formatAmount(invoice.TotalAmount), invoice.DueDate, string(invoice.Status),
			}
		},
		resource: func(client bill.Client) bill.InvoicesClient { return client.Invoices() },
	}
}

func customersSpec() entitySpec[bill.Customer, bill.CustomerCreateRequest, bill.CustomerUpdateRequest] {
	return entitySpec[bill.Customer, bill.CustomerCreateRequest, bill.CustomerUpdateRequest]{
		use:     "customers",
		aliases: []string{"customer"},
		short:   "Manage customers",
		headers: []string{"ID", "Name", "Company", "Email", "Archived"},
		row: func(customer bill.Customer) []string {
			return []string{
				customer.ID, customer.Name, customer.CompanyName,
				customer.Email, strconv.FormatBool(customer.Archived),
			}
		},
		resource: func(client bill.Client) bill.CustomersClient { return client.Customers() },
	}
}

func paymentsSpec() entitySpec[bill.Payment, bill.PaymentCreateRequest, bill.PaymentUpdateRequest] {
	return entitySpec[bill.Payment, bill.PaymentCreateRequest, bill.PaymentUpdateRequest]{
		use:     "payments",
		aliases: []string{"payment"},
		short:   "Manage payments",
		headers: []string{"ID", "Vendor", "Amount", "Process Date", "Status"},
		row: func(payment bill.Payment) []string {
			return []string{
				payment.ID, payment.VendorName, formatAmount(payment.Amount),
				payment.ProcessDate, string(payment.Status),
			}
		},
		resource: func(client bill.Client) bill.PaymentsClient { return client.Payments() },
	}
}

func creditMemosSpec() entitySpec[bill.CreditMemo, bill.CreditMemoCreateRequest, bill.CreditMemoUpdateRequest] {
	return entitySpec[bill.CreditMemo, bill.CreditMemoCreateRequest, bill.CreditMemoUpdateRequest]{
		use:     "credit-memos",
		aliases: []string{"credit-memo", "memos"},
		short:   "Manage credit memos",
		headers: []string{"ID", "Customer", "Ref #", "Amount", "Applied", "Status"},
		row: func(memo bill.CreditMemo) []string {
			return []string{
				memo.ID, memo.CustomerID, memo.ReferenceNumber,
				formatAmount(memo.Amount), formatAmount(memo.AppliedAmount), string(memo.Status),
			}
		},
		resource: func(client bill.Client) bill.CreditMemosClient { return client.CreditMemos() },
	}
}

func chartOfAccountsSpec() entitySpec[bill.ChartOfAccount, bill.ChartOfAccountCreateRequest, bill.ChartOfAccountUpdateRequest] {
	return entitySpec[bill.ChartOfAccount, bill.ChartOfAccountCreateRequest, bill.ChartOfAccountUpdateRequest]{
		use:     "chart-of-accounts",
		aliases: []string{"coa", "accounts"},
		short:   "Manage the chart of accounts",
		headers: []string{"ID", "Name", "Type", "Number", "Archived"},
		row: func(account bill.ChartOfAccount) []string {
			accountType := ""
			number := ""

			if account.Account != nil {
				accountType = string(account.Account.Type)
				number = account.Account.Number
			}

			return []string{
				account.ID, account.Name, accountType, number,
				strconv.FormatBool(account.Archived),
			}
		},
		resource: func(client bill.Client) bill.ChartOfAccountsClient { return client.ChartOfAccounts() },
	}
}

func accountingClassesSpec() entitySpec[bill.AccountingClass, bill.AccountingClassCreateRequest, bill.AccountingClassUpdateRequest] {
	return entitySpec[bill.AccountingClass, bill.AccountingClassCreateRequest, bill.AccountingClassUpdateRequest]{
		use:     "accounting-classes",
		aliases: []string{"classes"},
		short:   "Manage accounting classes",
		headers: []string{"ID", "Name", "Short Name", "Archived"},
		row: func(class bill.AccountingClass) []string {
			return []string{
				class.ID, class.Name, class.ShortName,
				strconv.FormatBool(class.Archived),
			}
		},
		resource: func(client bill.Client) bill.AccountingClassesClient { return client.AccountingClasses() },
	}
}
