package bill

// BillsClient provides access to the /v3/bills resource.
type BillsClient = ResourceClient[Bill, BillCreateRequest, BillUpdateRequest]

// BillPaymentStatus is a bill's payment state.
type BillPaymentStatus string

// Bill payment statuses.
const (
	BillPaymentStatusPaid      BillPaymentStatus = "PAID"
	BillPaymentStatusUnpaid    BillPaymentStatus = "UNPAID"
	BillPaymentStatusPartial   BillPaymentStatus = "PARTIAL"
	BillPaymentStatusScheduled BillPaymentStatus = "SCHEDULED"
	BillPaymentStatusUndefined BillPaymentStatus = "UNDEFINED"
)

// BillApprovalStatus is a bill's position in the approval workflow.
type BillApprovalStatus string

// Bill approval statuses.
const (
	BillApprovalStatusUnassigned BillApprovalStatus = "UNASSIGNED"
	BillApprovalStatusAssigned   BillApprovalStatus = "ASSIGNED"
	BillApprovalStatusApproving  BillApprovalStatus = "APPROVING"
	BillApprovalStatusApproved   BillApprovalStatus = "APPROVED"
	BillApprovalStatusDenied     BillApprovalStatus = "DENIED"
)

// ApproverStatus is a single approver's decision state.
type ApproverStatus string

// Approver statuses.
const (
	ApproverStatusWaiting   ApproverStatus = "WAITING"
	ApproverStatusApproved  ApproverStatus = "APPROVED"
	ApproverStatusDenied    ApproverStatus = "DENIED"
	ApproverStatusRerouted  ApproverStatus = "REROUTED"
	ApproverStatusUndefined ApproverStatus = "UNDEFINED"
)

// BillApprover is one entry in a bill's approval chain.
type BillApprover struct {
	UserID            string         `json:"userId"            yaml:"userId"`
	Status            ApproverStatus `json:"status"            yaml:"status"`
	ApproverOrder     int            `json:"approverOrder"     yaml:"approverOrder"`
	StatusChangedTime string         `json:"statusChangedTime" yaml:"statusChangedTime"`
}

// BillClassifications are the accounting classification ids on a bill.
type BillClassifications struct {
	ChartOfAccountID  string `json:"chartOfAccountId,omitempty"  yaml:"chartOfAccountId,omitempty"`
	AccountingClassID string `json:"accountingClassId,omitempty" yaml:"accountingClassId,omitempty"`
	DepartmentID      string `json:"departmentId,omitempty"      yaml:"departmentId,omitempty"`
	LocationID        string `json:"locationId,omitempty"        yaml:"locationId,omitempty"`
	ItemID            string `json:"itemId,omitempty"            yaml:"itemId,omitempty"`
}

// BillLineItemClassifications extend bill classifications with line-level ids.
type BillLineItemClassifications struct {
	BillClassifications `yaml:",inline"`

	EmployeeID string `json:"employeeId,omitempty" yaml:"employeeId,omitempty"`
	JobID      string `json:"jobId,omitempty"      yaml:"jobId,omitempty"`
	CustomerID string `json:"customerId,omitempty" yaml:"customerId,omitempty"`
}

// BillInvoice is the vendor invoice a bill was entered from.
type BillInvoice struct {
	InvoiceNumber string `json:"invoiceNumber" yaml:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"   yaml:"invoiceDate"`
}

// BillVendorCredit applies an existing vendor credit against a bill.
type BillVendorCredit struct {
	ID     string  `json:"id"     yaml:"id"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// BillLineItem is one line on a bill.
type BillLineItem struct {
	ID              string                       `json:"id,omitempty"              yaml:"id,omitempty"`
	Amount          float64                      `json:"amount,omitempty"          yaml:"amount,omitempty"`
	Quantity        float64                      `json:"quantity,omitempty"        yaml:"quantity,omitempty"`
	Price           float64                      `json:"price,omitempty"           yaml:"price,omitempty"`
	Description     string                       `json:"description,omitempty"     yaml:"description,omitempty"`
	Classifications *BillLineItemClassifications `json:"classifications,omitempty" yaml:"classifications,omitempty"`
}

// Bill represents a payable entered from a vendor invoice.
type Bill struct {
	ID                     string               `json:"id"                               yaml:"id"`
	Archived               bool                 `json:"archived"                         yaml:"archived"`
	VendorID               string               `json:"vendorId,omitempty"               yaml:"vendorId,omitempty"`
	VendorName             string               `json:"vendorName,omitempty"             yaml:"vendorName,omitempty"`
	FundingAmount          float64              `json:"fundingAmount,omitempty"          yaml:"fundingAmount,omitempty"`
	Amount                 float64              `json:"amount,omitempty"                 yaml:"amount,omitempty"`
	PaidAmount             float64              `json:"paidAmount,omitempty"             yaml:"paidAmount,omitempty"`
	DueAmount              float64              `json:"dueAmount,omitempty"              yaml:"dueAmount,omitempty"`
	ScheduledAmount        float64              `json:"scheduledAmount,omitempty"        yaml:"scheduledAmount,omitempty"`
	CreditAmount           float64              `json:"creditAmount"                     yaml:"creditAmount"`
	ExchangeRate           float64              `json:"exchangeRate,omitempty"           yaml:"exchangeRate,omitempty"`
	Description            string               `json:"description,omitempty"            yaml:"description,omitempty"`
	DueDate                string               `json:"dueDate"                          yaml:"dueDate"`
	Invoice                BillInvoice          `json:"invoice"                          yaml:"invoice"`
	BillLineItems          []BillLineItem       `json:"billLineItems"                    yaml:"billLineItems"`
	PayFromChartOfAccount  string               `json:"payFromChartOfAccountId,omitempty" yaml:"payFromChartOfAccountId,omitempty"`
	PaymentStatus          BillPaymentStatus    `json:"paymentStatus"                    yaml:"paymentStatus"`
	ApprovalStatus         BillApprovalStatus   `json:"approvalStatus"                   yaml:"approvalStatus"`
	CreatedTime            string               `json:"createdTime"                      yaml:"createdTime"`
	UpdatedTime            string               `json:"updatedTime"                      yaml:"updatedTime"`
	Classifications        *BillClassifications `json:"classifications,omitempty"        yaml:"classifications,omitempty"`
	Approvers              []BillApprover       `json:"approvers,omitempty"              yaml:"approvers,omitempty"`
	PurchaseOrderNumber    string               `json:"purchaseOrderNumber,omitempty"    yaml:"purchaseOrderNumber,omitempty"`
}

// BillCreateRequest represents a request to create a bill.
type BillCreateRequest struct {
	VendorID              string               `json:"vendorId"                          yaml:"vendorId"`
	Description           string               `json:"description,omitempty"             yaml:"description,omitempty"`
	DueDate               string               `json:"dueDate"                           yaml:"dueDate"`
	BillLineItems         []BillLineItem       `json:"billLineItems"                     yaml:"billLineItems"`
	Invoice               BillInvoice          `json:"invoice"                           yaml:"invoice"`
	PayFromChartOfAccount string               `json:"payFromChartOfAccountId,omitempty" yaml:"payFromChartOfAccountId,omitempty"`
	Classifications       *BillClassifications `json:"classifications,omitempty"         yaml:"classifications,omitempty"`
	VendorCredits         []BillVendorCredit   `json:"vendorCredits,omitempty"           yaml:"vendorCredits,omitempty"`
	PurchaseOrderNumber   string               `json:"purchaseOrderNumber,omitempty"     yaml:"purchaseOrderNumber,omitempty"`
	BillApprovals         *bool                `json:"billApprovals,omitempty"           yaml:"billApprovals,omitempty"`
}

// BillUpdateRequest represents a partial update to a bill. Nil fields are left
// unchanged.
type BillUpdateRequest struct {
	VendorID              *string              `json:"vendorId,omitempty"                yaml:"vendorId,omitempty"`
	Description           *string              `json:"description,omitempty"             yaml:"description,omitempty"`
	DueDate               *string              `json:"dueDate,omitempty"                 yaml:"dueDate,omitempty"`
	BillLineItems         []BillLineItem       `json:"billLineItems,omitempty"           yaml:"billLineItems,omitempty"`
	Invoice               *BillInvoice         `json:"invoice,omitempty"                 yaml:"invoice,omitempty"`
	PayFromChartOfAccount *string              `json:"payFromChartOfAccountId,omitempty" yaml:"payFromChartOfAccountId,omitempty"`
	Classifications       *BillClassifications `json:"classifications,omitempty"         yaml:"classifications,omitempty"`
	VendorCredits         []BillVendorCredit   `json:"vendorCredits,omitempty"           yaml:"vendorCredits,omitempty"`
	PurchaseOrderNumber   *string              `json:"purchaseOrderNumber,omitempty"     yaml:"purchaseOrderNumber,omitempty"`
	BillApprovals         *bool                `json:"billApprovals,omitempty"           yaml:"billApprovals,omitempty"`
}

// BillFilterableFields are the fields accepted in bill list filters.
var BillFilterableFields = []string{
	"id", "archived", "vendorId", "amount", "dueDate", "paymentStatus",
	"approvalStatus", "createdTime", "updatedTime",
}

// BillSortableFields are the fields accepted in bill list sorts.
var BillSortableFields = []string{"dueDate", "amount", "createdTime", "updatedTime"}
