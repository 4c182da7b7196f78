package bill

// CreditMemosClient provides access to the /v3/credit-memos resource.
type CreditMemosClient = ResourceClient[CreditMemo, CreditMemoCreateRequest, CreditMemoUpdateRequest]

// CreditMemoStatus is how much of a credit memo has been applied.
type CreditMemoStatus string

// Credit memo statuses.
const (
	CreditMemoStatusNotApplied       CreditMemoStatus = "NOT_APPLIED"
	CreditMemoStatusPartiallyApplied CreditMemoStatus = "PARTIALLY_APPLIED"
	CreditMemoStatusFullyApplied     CreditMemoStatus = "FULLY_APPLIED"
)

// CreditMemoClassifications are the accounting classification ids on a memo.
type CreditMemoClassifications struct {
	AccountingClassID string `json:"accountingClassId,omitempty" yaml:"accountingClassId,omitempty"`
	DepartmentID      string `json:"departmentId,omitempty"      yaml:"departmentId,omitempty"`
	JobID             string `json:"jobId,omitempty"             yaml:"jobId,omitempty"`
	LocationID        string `json:"locationId,omitempty"        yaml:"locationId,omitempty"`
}

// CreditMemoLineItemClassifications are the classification ids on one line.
type CreditMemoLineItemClassifications struct {
	ChartOfAccountID  string `json:"chartOfAccountId,omitempty"  yaml:"chartOfAccountId,omitempty"`
	AccountingClassID string `json:"accountingClassId,omitempty" yaml:"accountingClassId,omitempty"`
	DepartmentID      string `json:"departmentId,omitempty"      yaml:"departmentId,omitempty"`
	JobID             string `json:"jobId,omitempty"             yaml:"jobId,omitempty"`
	LocationID        string `json:"locationId,omitempty"        yaml:"locationId,omitempty"`
	ItemID            string `json:"itemId,omitempty"            yaml:"itemId,omitempty"`
}

// CreditMemoLineItem is one line on a credit memo.
type CreditMemoLineItem struct {
	ID              string                             `json:"id,omitempty"              yaml:"id,omitempty"`
	Description     string                             `json:"description,omitempty"     yaml:"description,omitempty"`
	Price           float64                            `json:"price,omitempty"           yaml:"price,omitempty"`
	Quantity        float64                            `json:"quantity,omitempty"        yaml:"quantity,omitempty"`
	Amount          float64                            `json:"amount,omitempty"          yaml:"amount,omitempty"`
	RatePercent     float64                            `json:"ratePercent,omitempty"     yaml:"ratePercent,omitempty"`
	Taxable         bool                               `json:"taxable,omitempty"         yaml:"taxable,omitempty"`
	Classifications *CreditMemoLineItemClassifications `json:"classifications,omitempty" yaml:"classifications,omitempty"`
}

// CreditMemo represents credit issued to a customer.
type CreditMemo struct {
	ID                  string                     `json:"id"                              yaml:"id"`
	Archived            bool                       `json:"archived"                        yaml:"archived"`
	CustomerID          string                     `json:"customerId,omitempty"            yaml:"customerId,omitempty"`
	ReferenceNumber     string                     `json:"referenceNumber,omitempty"       yaml:"referenceNumber,omitempty"`
	CreditDate          string                     `json:"creditDate,omitempty"            yaml:"creditDate,omitempty"`
	Description         string                     `json:"description,omitempty"           yaml:"description,omitempty"`
	SalesTaxItemID      string                     `json:"salesTaxItemId,omitempty"        yaml:"salesTaxItemId,omitempty"`
	PayToChartOfAccount string                     `json:"payToChartOfAccountId,omitempty" yaml:"payToChartOfAccountId,omitempty"`
	PayToBankAccountID  string                     `json:"payToBankAccountId,omitempty"    yaml:"payToBankAccountId,omitempty"`
	Amount              float64                    `json:"amount,omitempty"                yaml:"amount,omitempty"`
	AppliedAmount       float64                    `json:"appliedAmount,omitempty"         yaml:"appliedAmount,omitempty"`
	SalesTaxTotal       float64                    `json:"salesTaxTotal,omitempty"         yaml:"salesTaxTotal,omitempty"`
	SalesTaxPercentage  float64                    `json:"salesTaxPercentage,omitempty"    yaml:"salesTaxPercentage,omitempty"`
	Status              CreditMemoStatus           `json:"status,omitempty"                yaml:"status,omitempty"`
	CreatedTime         string                     `json:"createdTime"                     yaml:"createdTime"`
	UpdatedTime         string                     `json:"updatedTime"                     yaml:"updatedTime"`
	CreditMemoLineItems []CreditMemoLineItem       `json:"creditMemoLineItems,omitempty"   yaml:"creditMemoLineItems,omitempty"`
	Classifications     *CreditMemoClassifications `json:"classifications,omitempty"       yaml:"classifications,omitempty"`
}

// CreditMemoCreateRequest represents a request to create a credit memo.
type CreditMemoCreateRequest struct {
	CustomerID          string                     `json:"customerId"                      yaml:"customerId"`
	ReferenceNumber     string                     `json:"referenceNumber,omitempty"       yaml:"referenceNumber,omitempty"`
	CreditDate          string                     `json:"creditDate"                      yaml:"creditDate"`
	Description         string                     `json:"description,omitempty"           yaml:"description,omitempty"`
	SalesTaxItemID      string                     `json:"salesTaxItemId,omitempty"        yaml:"salesTaxItemId,omitempty"`
	PayToChartOfAccount string                     `json:"payToChartOfAccountId,omitempty" yaml:"payToChartOfAccountId,omitempty"`
	PayToBankAccountID  string                     `json:"payToBankAccountId,omitempty"    yaml:"payToBankAccountId,omitempty"`
	SalesTaxTotal       float64                    `json:"salesTaxTotal,omitempty"         yaml:"salesTaxTotal,omitempty"`
	SalesTaxPercentage  float64                    `json:"salesTaxPercentage,omitempty"    yaml:"salesTaxPercentage,omitempty"`
	CreditMemoLineItems []CreditMemoLineItem       `json:"creditMemoLineItems"             yaml:"creditMemoLineItems"`
	Classifications     *CreditMemoClassifications `json:"classifications,omitempty"       yaml:"classifications,omitempty"`
}

// CreditMemoUpdateRequest represents a partial update to a credit memo. Nil
// fields are left unchanged.
type CreditMemoUpdateRequest struct {
	CustomerID          *string                    `json:"customerId,omitempty"            yaml:"customerId,omitempty"`
	ReferenceNumber     *string                    `json:"referenceNumber,omitempty"       yaml:"referenceNumber,omitempty"`
	CreditDate          *string                    `json:"creditDate,omitempty"            yaml:"creditDate,omitempty"`
	Description         *string                    `json:"description,omitempty"           yaml:"description,omitempty"`
	SalesTaxItemID      *string                    `json:"salesTaxItemId,omitempty"        yaml:"salesTaxItemId,omitempty"`
	PayToChartOfAccount *string                    `json:"payToChartOfAccountId,omitempty" yaml:"payToChartOfAccountId,omitempty"`
	PayToBankAccountID  *string                    `json:"payToBankAccountId,omitempty"    yaml:"payToBankAccountId,omitempty"`
	SalesTaxTotal       *float64                   `json:"salesTaxTotal,omitempty"         yaml:"salesTaxTotal,omitempty"`
	SalesTaxPercentage  *float64                   `json:"salesTaxPercentage,omitempty"    yaml:"salesTaxPercentage,omitempty"`
	CreditMemoLineItems []CreditMemoLineItem       `json:"creditMemoLineItems,omitempty"   yaml:"creditMemoLineItems,omitempty"`
	Classifications     *CreditMemoClassifications `json:"classifications,omitempty"       yaml:"classifications,omitempty"`
}

// CreditMemoFilterableFields are the fields accepted in credit memo filters.
var CreditMemoFilterableFields = []string{
	"id", "archived", "customerId", "status", "creditDate", "amount",
	"createdTime", "updatedTime",
}

// CreditMemoSortableFields are the fields accepted in credit memo sorts.
var CreditMemoSortableFields = []string{"creditDate", "amount", "createdTime", "updatedTime"}
