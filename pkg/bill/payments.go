package bill

// PaymentsClient provides access to the /v3/payments resource.
type PaymentsClient = ResourceClient[Payment, PaymentCreateRequest, PaymentUpdateRequest]

// PaymentStatus is a payment's lifecycle state.
type PaymentStatus string

// Payment statuses.
const (
	PaymentStatusApproving PaymentStatus = "APPROVING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusVoid      PaymentStatus = "VOID"
	PaymentStatusScheduled PaymentStatus = "SCHEDULED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusUndefined PaymentStatus = "UNDEFINED"
)

// PaymentDisbursementType is how a payment is disbursed to the vendor.
type PaymentDisbursementType string

// Payment disbursement types.
const (
	PaymentDisbursementTypeACH           PaymentDisbursementType = "ACH"
	PaymentDisbursementTypeCheck         PaymentDisbursementType = "CHECK"
	PaymentDisbursementTypeRPPS          PaymentDisbursementType = "RPPS"
	PaymentDisbursementTypeInternational PaymentDisbursementType = "INTERNATIONAL"
	PaymentDisbursementTypeVCard         PaymentDisbursementType = "VCARD"
	PaymentDisbursementTypeWallet        PaymentDisbursementType = "WALLET"
	PaymentDisbursementTypeOffline       PaymentDisbursementType = "OFFLINE"
	PaymentDisbursementTypeUndefined     PaymentDisbursementType = "UNDEFINED"
)

// PaymentDisbursementStatus is the state of a disbursement.
type PaymentDisbursementStatus string

// Payment disbursement statuses.
const (
	PaymentDisbursementStatusDone       PaymentDisbursementStatus = "DONE"
	PaymentDisbursementStatusFailed     PaymentDisbursementStatus = "FAILED"
	PaymentDisbursementStatusInProgress PaymentDisbursementStatus = "IN_PROGRESS"
	PaymentDisbursementStatusUndefined  PaymentDisbursementStatus = "UNDEFINED"
)

// PaymentFundingAccountType is the kind of account funding a payment.
type PaymentFundingAccountType string

// Payment funding account types.
const (
	PaymentFundingAccountTypeBankAccount PaymentFundingAccountType = "BANK_ACCOUNT"
	PaymentFundingAccountTypeCardAccount PaymentFundingAccountType = "CARD_ACCOUNT"
	PaymentFundingAccountTypeAPCard      PaymentFundingAccountType = "AP_CARD"
	PaymentFundingAccountTypeUndefined   PaymentFundingAccountType = "UNDEFINED"
)

// PaymentSingleStatus is the status of a single (non-batched) payment.
type PaymentSingleStatus string

// Payment single statuses.
const (
	PaymentSingleStatusCleared     PaymentSingleStatus = "CLEARED"
	PaymentSingleStatusVoidPending PaymentSingleStatus = "VOID_PENDING"
	PaymentSingleStatusScheduled   PaymentSingleStatus = "SCHEDULED"
	PaymentSingleStatusPaid        PaymentSingleStatus = "PAID"
	PaymentSingleStatusFailed      PaymentSingleStatus = "FAILED"
	PaymentSingleStatusUndefined   PaymentSingleStatus = "UNDEFINED"
)

// PaymentFundingAccount is the account a payment draws from.
type PaymentFundingAccount struct {
	Type PaymentFundingAccountType `json:"type,omitempty" yaml:"type,omitempty"`
	ID   string                    `json:"id,omitempty"   yaml:"id,omitempty"`
}

// PaymentVendorCredit applies a vendor credit within a bill payment.
type PaymentVendorCredit struct {
	ID     string  `json:"id,omitempty"     yaml:"id,omitempty"`
	Amount float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// PaymentBillPayment is one bill covered by a payment.
type PaymentBillPayment struct {
	BillID        string                `json:"billId,omitempty"        yaml:"billId,omitempty"`
	Amount        float64               `json:"amount,omitempty"        yaml:"amount,omitempty"`
	VendorCredits []PaymentVendorCredit `json:"vendorCredits,omitempty" yaml:"vendorCredits,omitempty"`
}

// PaymentProcessingOptions tune how a payment is processed.
type PaymentProcessingOptions struct {
	RequestPayFaster         *bool  `json:"requestPayFaster,omitempty"         yaml:"requestPayFaster,omitempty"`
	CreateBill               *bool  `json:"createBill,omitempty"               yaml:"createBill,omitempty"`
	RequestCheckDeliveryType string `json:"requestCheckDeliveryType,omitempty" yaml:"requestCheckDeliveryType,omitempty"`
}

// PaymentCheckDisbursement holds check delivery details.
type PaymentCheckDisbursement struct {
	CheckNumber    string `json:"checkNumber,omitempty"    yaml:"checkNumber,omitempty"`
	MailedDate     string `json:"mailedDate,omitempty"     yaml:"mailedDate,omitempty"`
	DeliveryDate   string `json:"deliveryDate,omitempty"   yaml:"deliveryDate,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty" yaml:"trackingNumber,omitempty"`
	TrackingURL    string `json:"trackingUrl,omitempty"    yaml:"trackingUrl,omitempty"`
}

// PaymentAchDisbursement holds ACH clearing details.
type PaymentAchDisbursement struct {
	TraceNumber string `json:"traceNumber,omitempty" yaml:"traceNumber,omitempty"`
	ClearedDate string `json:"clearedDate,omitempty" yaml:"clearedDate,omitempty"`
}

// PaymentRppsDisbursement holds RPPS confirmation details.
type PaymentRppsDisbursement struct {
	ConfirmationNumber string `json:"confirmationNumber,omitempty" yaml:"confirmationNumber,omitempty"`
}

// PaymentInternationalDisbursement holds international wire details.
type PaymentInternationalDisbursement struct {
	ReferenceNumber string `json:"referenceNumber,omitempty" yaml:"referenceNumber,omitempty"`
	ClearedDate     string `json:"clearedDate,omitempty"     yaml:"clearedDate,omitempty"`
}

// PaymentVcardDisbursement holds virtual card details.
type PaymentVcardDisbursement struct {
	CardNumber     string `json:"cardNumber,omitempty"     yaml:"cardNumber,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty" yaml:"expirationDate,omitempty"`
}

// PaymentWalletDisbursement holds wallet transaction details.
type PaymentWalletDisbursement struct {
	TransactionID string `json:"transactionId,omitempty" yaml:"transactionId,omitempty"`
}

// PaymentDisbursementInfo carries the per-type disbursement details; only the
// field matching the payment's disbursement type is populated.
type PaymentDisbursementInfo struct {
	CheckDisbursement         *PaymentCheckDisbursement         `json:"checkDisbursement,omitempty"         yaml:"checkDisbursement,omitempty"`
	AchDisbursement           *PaymentAchDisbursement           `json:"achDisbursement,omitempty"           yaml:"achDisbursement,omitempty"`
	RppsDisbursement          *PaymentRppsDisbursement          `json:"rppsDisbursement,omitempty"          yaml:"rppsDisbursement,omitempty"`
	InternationalDisbursement *PaymentInternationalDisbursement `json:"internationalDisbursement,omitempty" yaml:"internationalDisbursement,omitempty"`
	VcardDisbursement         *PaymentVcardDisbursement         `json:"vcardDisbursement,omitempty"         yaml:"vcardDisbursement,omitempty"`
	WalletDisbursement        *PaymentWalletDisbursement        `json:"walletDisbursement,omitempty"        yaml:"walletDisbursement,omitempty"`
}

// PaymentVoidInfo records one void action against a payment.
type PaymentVoidInfo struct {
	VoidDate   string `json:"voidDate,omitempty"   yaml:"voidDate,omitempty"`
	VoidReason string `json:"voidReason,omitempty" yaml:"voidReason,omitempty"`
	VoidedBy   string `json:"voidedBy,omitempty"   yaml:"voidedBy,omitempty"`
}

// PaymentPurposeCode is a coded payment purpose.
type PaymentPurposeCode struct {
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// PaymentPurpose describes why a payment was made.
type PaymentPurpose struct {
	Text string              `json:"text,omitempty" yaml:"text,omitempty"`
	Code *PaymentPurposeCode `json:"code,omitempty" yaml:"code,omitempty"`
}

// Payment represents a disbursement to a vendor.
type Payment struct {
	ID                 string                    `json:"id"                           yaml:"id"`
	Amount             float64                   `json:"amount,omitempty"             yaml:"amount,omitempty"`
	VendorID           string                    `json:"vendorId,omitempty"           yaml:"vendorId,omitempty"`
	VendorName         string                    `json:"vendorName,omitempty"         yaml:"vendorName,omitempty"`
	BillID             string                    `json:"billId,omitempty"             yaml:"billId,omitempty"`
	Description        string                    `json:"description,omitempty"        yaml:"description,omitempty"`
	ProcessDate        string                    `json:"processDate,omitempty"        yaml:"processDate,omitempty"`
	BillPayments       []PaymentBillPayment      `json:"billPayments,omitempty"       yaml:"billPayments,omitempty"`
	FundingAccount     *PaymentFundingAccount    `json:"fundingAccount,omitempty"     yaml:"fundingAccount,omitempty"`
	ProcessingOptions  *PaymentProcessingOptions `json:"processingOptions,omitempty"  yaml:"processingOptions,omitempty"`
	Status             PaymentStatus             `json:"status,omitempty"             yaml:"status,omitempty"`
	DisbursementType   PaymentDisbursementType   `json:"disbursementType,omitempty"   yaml:"disbursementType,omitempty"`
	DisbursementStatus PaymentDisbursementStatus `json:"disbursementStatus,omitempty" yaml:"disbursementStatus,omitempty"`
	DisbursementInfo   *PaymentDisbursementInfo  `json:"disbursementInfo,omitempty"   yaml:"disbursementInfo,omitempty"`
	VoidInfo           []PaymentVoidInfo         `json:"voidInfo,omitempty"           yaml:"voidInfo,omitempty"`
	PaymentPurpose     *PaymentPurpose           `json:"paymentPurpose,omitempty"     yaml:"paymentPurpose,omitempty"`
	SingleStatus       PaymentSingleStatus       `json:"singleStatus,omitempty"       yaml:"singleStatus,omitempty"`
	CreatedTime        string                    `json:"createdTime,omitempty"        yaml:"createdTime,omitempty"`
	UpdatedTime        string                    `json:"updatedTime,omitempty"        yaml:"updatedTime,omitempty"`
}

// PaymentCreateRequest represents a request to create a payment.
type PaymentCreateRequest struct {
	VendorID          string                    `json:"vendorId"                    yaml:"vendorId"`
	Amount            float64                   `json:"amount,omitempty"            yaml:"amount,omitempty"`
	ProcessDate       string                    `json:"processDate,omitempty"       yaml:"processDate,omitempty"`
	Description       string                    `json:"description,omitempty"       yaml:"description,omitempty"`
	BillPayments      []PaymentBillPayment      `json:"billPayments,omitempty"      yaml:"billPayments,omitempty"`
	FundingAccount    *PaymentFundingAccount    `json:"fundingAccount,omitempty"    yaml:"fundingAccount,omitempty"`
	ProcessingOptions *PaymentProcessingOptions `json:"processingOptions,omitempty" yaml:"processingOptions,omitempty"`
	PaymentPurpose    *PaymentPurpose           `json:"paymentPurpose,omitempty"    yaml:"paymentPurpose,omitempty"`
}

// PaymentUpdateRequest represents a partial update to a payment. Nil fields
// are left unchanged.
type PaymentUpdateRequest struct {
	Amount            *float64                  `json:"amount,omitempty"            yaml:"amount,omitempty"`
	ProcessDate       *string                   `json:"processDate,omitempty"       yaml:"processDate,omitempty"`
	Description       *string                   `json:"description,omitempty"       yaml:"description,omitempty"`
	BillPayments      []PaymentBillPayment      `json:"billPayments,omitempty"      yaml:"billPayments,omitempty"`
	FundingAccount    *PaymentFundingAccount    `json:"fundingAccount,omitempty"    yaml:"fundingAccount,omitempty"`
	ProcessingOptions *PaymentProcessingOptions `json:"processingOptions,omitempty" yaml:"processingOptions,omitempty"`
	PaymentPurpose    *PaymentPurpose           `json:"paymentPurpose,omitempty"    yaml:"paymentPurpose,omitempty"`
}

// PaymentFilterableFields are the fields accepted in payment list filters.
var PaymentFilterableFields = []string{
	"id", "vendorId", "status", "disbursementType", "processDate", "amount",
	"createdTime", "updatedTime",
}

// PaymentSortableFields are the fields accepted in payment list sorts.
var PaymentSortableFields = []string{"processDate", "amount", "createdTime", "updatedTime"}
