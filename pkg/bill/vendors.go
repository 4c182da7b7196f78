package bill

// VendorsClient provides access to the /v3/vendors resource.
type VendorsClient = ResourceClient[Vendor, VendorCreateRequest, VendorUpdateRequest]

// VendorAccountType distinguishes business and personal vendors.
type VendorAccountType string

// Vendor account types.
const (
	VendorAccountTypeBusiness VendorAccountType = "BUSINESS"
	VendorAccountTypePerson   VendorAccountType = "PERSON"
	VendorAccountTypeNone     VendorAccountType = "NONE"
)

// VendorBankAccountType is the kind of bank account on file for a vendor.
type VendorBankAccountType string

// Vendor bank account types.
const (
	VendorBankAccountTypeChecking VendorBankAccountType = "CHECKING"
	VendorBankAccountTypeSavings  VendorBankAccountType = "SAVINGS"
)

// VendorBankAccountOwnerType identifies who owns the vendor's bank account.
type VendorBankAccountOwnerType string

// Vendor bank account owner types.
const (
	VendorBankAccountOwnerTypeBusiness VendorBankAccountOwnerType = "BUSINESS"
	VendorBankAccountOwnerTypePerson   VendorBankAccountOwnerType = "PERSON"
)

// VendorVirtualCardStatus is the vendor's virtual card enrollment state.
type VendorVirtualCardStatus string

// Vendor virtual card statuses.
const (
	VendorVirtualCardStatusEnrolled   VendorVirtualCardStatus = "ENROLLED"
	VendorVirtualCardStatusUnenrolled VendorVirtualCardStatus = "UNENROLLED"
	VendorVirtualCardStatusPending    VendorVirtualCardStatus = "PENDING"
	VendorVirtualCardStatusUnknown    VendorVirtualCardStatus = "UNKNOWN"
)

// VendorPayByType is the disbursement method used to pay a vendor.
type VendorPayByType string

// Vendor pay-by types.
const (
	VendorPayByTypeACH         VendorPayByType = "ACH"
	VendorPayByTypeCheck       VendorPayByType = "CHECK"
	VendorPayByTypeVirtualCard VendorPayByType = "VIRTUAL_CARD"
)

// VendorAddress is a vendor's postal address.
type VendorAddress struct {
	Line1           string `json:"line1,omitempty"           yaml:"line1,omitempty"`
	City            string `json:"city,omitempty"            yaml:"city,omitempty"`
	StateOrProvince string `json:"stateOrProvince,omitempty" yaml:"stateOrProvince,omitempty"`
	ZipOrPostalCode string `json:"zipOrPostalCode,omitempty" yaml:"zipOrPostalCode,omitempty"`
	Country         string `json:"country,omitempty"         yaml:"country,omitempty"`
}

// VendorBankAccount is the bank account used to pay a vendor.
type VendorBankAccount struct {
	NameOnAccount string                     `json:"nameOnAccount,omitempty" yaml:"nameOnAccount,omitempty"`
	AccountNumber string                     `json:"accountNumber,omitempty" yaml:"accountNumber,omitempty"`
	RoutingNumber string                     `json:"routingNumber,omitempty" yaml:"routingNumber,omitempty"`
	Type          VendorBankAccountType      `json:"type,omitempty"          yaml:"type,omitempty"`
	OwnerType     VendorBankAccountOwnerType `json:"ownerType,omitempty"     yaml:"ownerType,omitempty"`
}

// VendorVirtualCard is the vendor's virtual card enrollment.
type VendorVirtualCard struct {
	Status VendorVirtualCardStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// VendorPaymentInformation groups how a vendor gets paid.
type VendorPaymentInformation struct {
	PayeeName   string             `json:"payeeName,omitempty"   yaml:"payeeName,omitempty"`
	PayByType   VendorPayByType    `json:"payByType,omitempty"   yaml:"payByType,omitempty"`
	BankAccount *VendorBankAccount `json:"bankAccount,omitempty" yaml:"bankAccount,omitempty"`
	VirtualCard *VendorVirtualCard `json:"virtualCard,omitempty" yaml:"virtualCard,omitempty"`
}

// VendorAdditionalInfo holds bookkeeping flags for a vendor.
type VendorAdditionalInfo struct {
	Track1099       *bool `json:"track1099,omitempty"       yaml:"track1099,omitempty"`
	CombinePayments *bool `json:"combinePayments,omitempty" yaml:"combinePayments,omitempty"`
}

// VendorBalance is the outstanding balance owed to a vendor.
type VendorBalance struct {
	Amount float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// VendorAutoPay is the vendor's auto-pay configuration.
type VendorAutoPay struct {
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// Vendor represents a Bill.com vendor.
type Vendor struct {
	ID                 string                    `json:"id"                           yaml:"id"`
	Archived           bool                      `json:"archived"                     yaml:"archived"`
	Name               string                    `json:"name"                         yaml:"name"`
	ShortName          string                    `json:"shortName,omitempty"          yaml:"shortName,omitempty"`
	AccountType        VendorAccountType         `json:"accountType"                  yaml:"accountType"`
	Email              string                    `json:"email,omitempty"              yaml:"email,omitempty"`
	Phone              string                    `json:"phone,omitempty"              yaml:"phone,omitempty"`
	Address            *VendorAddress            `json:"address,omitempty"            yaml:"address,omitempty"`
	PaymentInformation *VendorPaymentInformation `json:"paymentInformation,omitempty" yaml:"paymentInformation,omitempty"`
	AdditionalInfo     *VendorAdditionalInfo     `json:"additionalInfo,omitempty"     yaml:"additionalInfo,omitempty"`
	BankAccountStatus  string                    `json:"bankAccountStatus,omitempty"  yaml:"bankAccountStatus,omitempty"`
	RecurringPayments  bool                      `json:"recurringPayments,omitempty"  yaml:"recurringPayments,omitempty"`
	BillCurrency       string                    `json:"billCurrency,omitempty"       yaml:"billCurrency,omitempty"`
	Balance            *VendorBalance            `json:"balance,omitempty"            yaml:"balance,omitempty"`
	AutoPay            *VendorAutoPay            `json:"autoPay,omitempty"            yaml:"autoPay,omitempty"`
	NetworkStatus      string                    `json:"networkStatus,omitempty"      yaml:"networkStatus,omitempty"`
	CreatedTime        string                    `json:"createdTime"                  yaml:"createdTime"`
	UpdatedTime        string                    `json:"updatedTime"                  yaml:"updatedTime"`
}

// VendorCreateRequest represents a request to create a vendor.
type VendorCreateRequest struct {
	Name               string                    `json:"name"                         yaml:"name"`
	AccountType        VendorAccountType         `json:"accountType"                  yaml:"accountType"`
	Email              string                    `json:"email,omitempty"              yaml:"email,omitempty"`
	Phone              string                    `json:"phone,omitempty"              yaml:"phone,omitempty"`
	Address            *VendorAddress            `json:"address,omitempty"            yaml:"address,omitempty"`
	PaymentInformation *VendorPaymentInformation `json:"paymentInformation,omitempty" yaml:"paymentInformation,omitempty"`
	AdditionalInfo     *VendorAdditionalInfo     `json:"additionalInfo,omitempty"     yaml:"additionalInfo,omitempty"`
	BillCurrency       string                    `json:"billCurrency,omitempty"       yaml:"billCurrency,omitempty"`
}

// VendorUpdateRequest represents a partial update to a vendor. Nil fields are
// left unchanged.
type VendorUpdateRequest struct {
	Name               *string                   `json:"name,omitempty"               yaml:"name,omitempty"`
	AccountType        *VendorAccountType        `json:"accountType,omitempty"        yaml:"accountType,omitempty"`
	Email              *string                   `json:"email,omitempty"              yaml:"email,omitempty"`
	Phone              *string                   `json:"phone,omitempty"              yaml:"phone,omitempty"`
	Address            *VendorAddress            `json:"address,omitempty"            yaml:"address,omitempty"`
	PaymentInformation *VendorPaymentInformation `json:"paymentInformation,omitempty" yaml:"paymentInformation,omitempty"`
	AdditionalInfo     *VendorAdditionalInfo     `json:"additionalInfo,omitempty"     yaml:"additionalInfo,omitempty"`
	BillCurrency       *string                   `json:"billCurrency,omitempty"       yaml:"billCurrency,omitempty"`
	AutoPay            *VendorAutoPay            `json:"autoPay,omitempty"            yaml:"autoPay,omitempty"`
}

// VendorFilterableFields are the fields accepted in vendor list filters.
var VendorFilterableFields = []string{
	"id", "archived", "name", "shortName", "accountType", "email",
	"networkStatus", "createdTime", "updatedTime",
}

// VendorSortableFields are the fields accepted in vendor list sorts.
var VendorSortableFields = []string{"name", "createdTime", "updatedTime"}
