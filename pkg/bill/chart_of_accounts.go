package bill

// ChartOfAccountsClient provides access to the
// /v3/classifications/chart-of-accounts resource.
type ChartOfAccountsClient = ResourceClient[ChartOfAccount, ChartOfAccountCreateRequest, ChartOfAccountUpdateRequest]

// AccountType is the accounting type of a chart-of-accounts entry.
type AccountType string

// Account types.
const (
	AccountTypeUnspecified           AccountType = "UNSPECIFIED"
	AccountTypeAccountsPayable       AccountType = "ACCOUNTS_PAYABLE"
	AccountTypeAccountsReceivable    AccountType = "ACCOUNTS_RECEIVABLE"
	AccountTypeBank                  AccountType = "BANK"
	AccountTypeCostOfGoodsSold       AccountType = "COST_OF_GOODS_SOLD"
	AccountTypeCreditCard            AccountType = "CREDIT_CARD"
	AccountTypeEquity                AccountType = "EQUITY"
	AccountTypeExpense               AccountType = "EXPENSE"
	AccountTypeFixedAsset            AccountType = "FIXED_ASSET"
	AccountTypeIncome                AccountType = "INCOME"
	AccountTypeLongTermLiability     AccountType = "LONG_TERM_LIABILITY"
	AccountTypeOtherAsset            AccountType = "OTHER_ASSET"
	AccountTypeOtherCurrentAsset     AccountType = "OTHER_CURRENT_ASSET"
	AccountTypeOtherCurrentLiability AccountType = "OTHER_CURRENT_LIABILITY"
	AccountTypeOtherExpense          AccountType = "OTHER_EXPENSE"
	AccountTypeOtherIncome           AccountType = "OTHER_INCOME"
	AccountTypeNonPosting            AccountType = "NON_POSTING"
)

// ChartOfAccountAccount holds the typed ledger attributes of an entry.
type ChartOfAccountAccount struct {
	Type   AccountType `json:"type,omitempty"   yaml:"type,omitempty"`
	Number string      `json:"number,omitempty" yaml:"number,omitempty"`
}

// ChartOfAccount represents one entry in the chart of accounts.
type ChartOfAccount struct {
	ID          string                 `json:"id"                    yaml:"id"`
	Archived    bool                   `json:"archived"              yaml:"archived"`
	Name        string                 `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string                 `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
	Account     *ChartOfAccountAccount `json:"account,omitempty"     yaml:"account,omitempty"`
	CreatedTime string                 `json:"createdTime"           yaml:"createdTime"`
	UpdatedTime string                 `json:"updatedTime"           yaml:"updatedTime"`
}

// ChartOfAccountCreateRequest represents a request to create an entry.
type ChartOfAccountCreateRequest struct {
	Name        string                 `json:"name"                  yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    string                 `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
	Account     *ChartOfAccountAccount `json:"account,omitempty"     yaml:"account,omitempty"`
}

// ChartOfAccountUpdateRequest represents a partial update to an entry. Nil
// fields are left unchanged.
type ChartOfAccountUpdateRequest struct {
	Name        *string                `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    *string                `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
	Account     *ChartOfAccountAccount `json:"account,omitempty"     yaml:"account,omitempty"`
}

// ChartOfAccountFilterableFields are the fields accepted in chart-of-accounts
// filters.
var ChartOfAccountFilterableFields = []string{
	"id", "archived", "name", "parentId", "account.type", "account.number",
	"createdTime", "updatedTime",
}

// ChartOfAccountSortableFields are the fields accepted in chart-of-accounts
// sorts.
var ChartOfAccountSortableFields = []string{"name", "createdTime", "updatedTime"}
