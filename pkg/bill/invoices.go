package bill

// InvoicesClient provides access to the /v3/invoices resource.
type InvoicesClient = ResourceClient[Invoice, InvoiceCreateRequest, InvoiceUpdateRequest]

// InvoiceStatus is an invoice's lifecycle state.
type InvoiceStatus string

// Invoice statuses.
const (
	InvoiceStatusOpen           InvoiceStatus = "OPEN"
	InvoiceStatusPartialPayment InvoiceStatus = "PARTIAL_PAYMENT"
	InvoiceStatusPaid           InvoiceStatus = "PAID"
	InvoiceStatusScheduled      InvoiceStatus = "SCHEDULED"
	InvoiceStatusVoid           InvoiceStatus = "VOID"
	InvoiceStatusUndefined      InvoiceStatus = "UNDEFINED"
)

// InvoicePaymentStatus is the state of one payment applied to an invoice.
type InvoicePaymentStatus string

// Invoice payment statuses.
const (
	InvoicePaymentStatusPaid      InvoicePaymentStatus = "PAID"
	InvoicePaymentStatusScheduled InvoicePaymentStatus = "SCHEDULED"
	InvoicePaymentStatusUndefined InvoicePaymentStatus = "UNDEFINED"
)

// InvoiceClassifications are the accounting classification ids on an invoice.
type InvoiceClassifications struct {
	AccountingClassID string `json:"accountingClassId,omitempty" yaml:"accountingClassId,omitempty"`
	DepartmentID      string `json:"departmentId,omitempty"      yaml:"departmentId,omitempty"`
	JobID             string `json:"jobId,omitempty"             yaml:"jobId,omitempty"`
	LocationID        string `json:"locationId,omitempty"        yaml:"locationId,omitempty"`
}

// InvoiceLineItemClassifications are the classification ids on one line.
type InvoiceLineItemClassifications struct {
	ChartOfAccountID  string `json:"chartOfAccountId,omitempty"  yaml:"chartOfAccountId,omitempty"`
	AccountingClassID string `json:"accountingClassId,omitempty" yaml:"accountingClassId,omitempty"`
	DepartmentID      string `json:"departmentId,omitempty"      yaml:"departmentId,omitempty"`
	JobID             string `json:"jobId,omitempty"             yaml:"jobId,omitempty"`
	LocationID        string `json:"locationId,omitempty"        yaml:"locationId,omitempty"`
	ItemID            string `json:"itemId,omitempty"            yaml:"itemId,omitempty"`
}

// InvoiceLineItem is one line on an invoice.
type InvoiceLineItem struct {
	ID              string                          `json:"id,omitempty"              yaml:"id,omitempty"`
	Description     string                          `json:"description,omitempty"     yaml:"description,omitempty"`
	Price           float64                         `json:"price,omitempty"           yaml:"price,omitempty"`
	Quantity        float64                         `json:"quantity,omitempty"        yaml:"quantity,omitempty"`
	Classifications *InvoiceLineItemClassifications `json:"classifications,omitempty" yaml:"classifications,omitempty"`
}

// InvoicePayment is one payment record applied to an invoice.
type InvoicePayment struct {
	ID     string               `json:"id,omitempty"     yaml:"id,omitempty"`
	Amount float64              `json:"amount,omitempty" yaml:"amount,omitempty"`
	Status InvoicePaymentStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Date   string               `json:"date,omitempty"   yaml:"date,omitempty"`
}

// InvoiceConvenienceFee configures the card payment convenience fee.
type InvoiceConvenienceFee struct {
	Percentage float64 `json:"percentage,omitempty" yaml:"percentage,omitempty"`
}

// InvoiceCustomer references the customer an invoice is issued to.
type InvoiceCustomer struct {
	ID string `json:"id" yaml:"id"`
}

// Invoice represents a receivable issued to a customer.
type Invoice struct {
	ID                  string                  `json:"id"                               yaml:"id"`
	Archived            bool                    `json:"archived"                         yaml:"archived"`
	InvoiceNumber       string                  `json:"invoiceNumber,omitempty"          yaml:"invoiceNumber,omitempty"`
	InvoiceDate         string                  `json:"invoiceDate,omitempty"            yaml:"invoiceDate,omitempty"`
	DueDate             string                  `json:"dueDate,omitempty"                yaml:"dueDate,omitempty"`
	CustomerID          string                  `json:"customerId,omitempty"             yaml:"customerId,omitempty"`
	TotalAmount         float64                 `json:"totalAmount,omitempty"            yaml:"totalAmount,omitempty"`
	DueAmount           float64                 `json:"dueAmount,omitempty"              yaml:"dueAmount,omitempty"`
	ScheduledAmount     float64                 `json:"scheduledAmount,omitempty"        yaml:"scheduledAmount,omitempty"`
	CreditAmount        float64                 `json:"creditAmount,omitempty"           yaml:"creditAmount,omitempty"`
	Status              InvoiceStatus           `json:"status,omitempty"                 yaml:"status,omitempty"`
	ExchangeRate        float64                 `json:"exchangeRate,omitempty"           yaml:"exchangeRate,omitempty"`
	CreatedTime         string                  `json:"createdTime"                      yaml:"createdTime"`
	UpdatedTime         string                  `json:"updatedTime"                      yaml:"updatedTime"`
	InvoiceLineItems    []InvoiceLineItem       `json:"invoiceLineItems,omitempty"       yaml:"invoiceLineItems,omitempty"`
	PayToChartOfAccount string                  `json:"payToChartOfAccountId,omitempty"  yaml:"payToChartOfAccountId,omitempty"`
	Payments            []InvoicePayment        `json:"payments,omitempty"               yaml:"payments,omitempty"`
	Classifications     *InvoiceClassifications `json:"classifications,omitempty"        yaml:"classifications,omitempty"`
	SalesTaxItemID      string                  `json:"salesTaxItemId,omitempty"         yaml:"salesTaxItemId,omitempty"`
	SalesTaxTotal       float64                 `json:"salesTaxTotal,omitempty"          yaml:"salesTaxTotal,omitempty"`
	SalesTaxPercentage  float64                 `json:"salesTaxPercentage,omitempty"     yaml:"salesTaxPercentage,omitempty"`
	EnableCardPayment   bool                    `json:"enableCardPayment,omitempty"      yaml:"enableCardPayment,omitempty"`
	ConvenienceFee      *InvoiceConvenienceFee  `json:"convenienceFee,omitempty"         yaml:"convenienceFee,omitempty"`
	InvoicePdfID        string                  `json:"invoicePdfId,omitempty"           yaml:"invoicePdfId,omitempty"`
}

// InvoiceCreateRequest represents a request to create an invoice.
type InvoiceCreateRequest struct {
	InvoiceNumber       string                  `json:"invoiceNumber"                   yaml:"invoiceNumber"`
	InvoiceDate         string                  `json:"invoiceDate"                     yaml:"invoiceDate"`
	DueDate             string                  `json:"dueDate"                         yaml:"dueDate"`
	Customer            InvoiceCustomer         `json:"customer"                        yaml:"customer"`
	InvoiceLineItems    []InvoiceLineItem       `json:"invoiceLineItems"                yaml:"invoiceLineItems"`
	PayToChartOfAccount string                  `json:"payToChartOfAccountId,omitempty" yaml:"payToChartOfAccountId,omitempty"`
	Classifications     *InvoiceClassifications `json:"classifications,omitempty"       yaml:"classifications,omitempty"`
	SalesTaxItemID      string                  `json:"salesTaxItemId,omitempty"        yaml:"salesTaxItemId,omitempty"`
	SalesTaxTotal       float64                 `json:"salesTaxTotal,omitempty"         yaml:"salesTaxTotal,omitempty"`
	SalesTaxPercentage  float64                 `json:"salesTaxPercentage,omitempty"    yaml:"salesTaxPercentage,omitempty"`
	EnableCardPayment   *bool                   `json:"enableCardPayment,omitempty"     yaml:"enableCardPayment,omitempty"`
	ConvenienceFee      *InvoiceConvenienceFee  `json:"convenienceFee,omitempty"        yaml:"convenienceFee,omitempty"`
}

// InvoiceUpdateRequest represents a partial update to an invoice. Nil fields
// are left unchanged.
type InvoiceUpdateRequest struct {
	InvoiceNumber       *string                 `json:"invoiceNumber,omitempty"         yaml:"invoiceNumber,omitempty"`
	InvoiceDate         *string                 `json:"invoiceDate,omitempty"           yaml:"invoiceDate,omitempty"`
	DueDate             *string                 `json:"dueDate,omitempty"               yaml:"dueDate,omitempty"`
	CustomerID          *string                 `json:"customerId,omitempty"            yaml:"customerId,omitempty"`
	InvoiceLineItems    []InvoiceLineItem       `json:"invoiceLineItems,omitempty"      yaml:"invoiceLineItems,omitempty"`
	PayToChartOfAccount *string                 `json:"payToChartOfAccountId,omitempty" yaml:"payToChartOfAccountId,omitempty"`
	Classifications     *InvoiceClassifications `json:"classifications,omitempty"       yaml:"classifications,omitempty"`
	SalesTaxItemID      *string                 `json:"salesTaxItemId,omitempty"        yaml:"salesTaxItemId,omitempty"`
	SalesTaxTotal       *float64                `json:"salesTaxTotal,omitempty"         yaml:"salesTaxTotal,omitempty"`
	SalesTaxPercentage  *float64                `json:"salesTaxPercentage,omitempty"    yaml:"salesTaxPercentage,omitempty"`
	EnableCardPayment   *bool                   `json:"enableCardPayment,omitempty"     yaml:"enableCardPayment,omitempty"`
	ConvenienceFee      *InvoiceConvenienceFee  `json:"convenienceFee,omitempty"        yaml:"convenienceFee,omitempty"`
}

// InvoiceFilterableFields are the fields accepted in invoice list filters.
var InvoiceFilterableFields = []string{
	"id", "archived", "invoiceNumber", "customerId", "status", "dueDate",
	"invoiceDate", "totalAmount", "createdTime", "updatedTime",
}

// InvoiceSortableFields are the fields accepted in invoice list sorts.
var InvoiceSortableFields = []string{
	"invoiceDate", "dueDate", "totalAmount", "createdTime", "updatedTime",
}
