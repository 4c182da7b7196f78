package bill

// CustomersClient provides access to the /v3/customers resource.
type CustomersClient = ResourceClient[Customer, CustomerCreateRequest, CustomerUpdateRequest]

// CustomerAccountType distinguishes business and personal customers.
type CustomerAccountType string

// Customer account types.
const (
	CustomerAccountTypeBusiness CustomerAccountType = "BUSINESS"
	CustomerAccountTypePerson   CustomerAccountType = "PERSON"
	CustomerAccountTypeNone     CustomerAccountType = "NONE"
)

// CustomerContact is the contact person on a customer record.
type CustomerContact struct {
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"  yaml:"lastName,omitempty"`
}

// CustomerAddress is a billing or shipping address.
type CustomerAddress struct {
	Line1           string `json:"line1,omitempty"           yaml:"line1,omitempty"`
	Line2           string `json:"line2,omitempty"           yaml:"line2,omitempty"`
	City            string `json:"city,omitempty"            yaml:"city,omitempty"`
	StateOrProvince string `json:"stateOrProvince,omitempty" yaml:"stateOrProvince,omitempty"`
	ZipOrPostalCode string `json:"zipOrPostalCode,omitempty" yaml:"zipOrPostalCode,omitempty"`
	Country         string `json:"country,omitempty"         yaml:"country,omitempty"`
	CountryName     string `json:"countryName,omitempty"     yaml:"countryName,omitempty"`
}

// CustomerBalance is the balance owed by a customer.
type CustomerBalance struct {
	Amount float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// Customer represents a Bill.com customer.
type Customer struct {
	ID              string              `json:"id"                        yaml:"id"`
	Archived        bool                `json:"archived"                  yaml:"archived"`
	Email           string              `json:"email,omitempty"           yaml:"email,omitempty"`
	Name            string              `json:"name,omitempty"            yaml:"name,omitempty"`
	CompanyName     string              `json:"companyName,omitempty"     yaml:"companyName,omitempty"`
	Contact         *CustomerContact    `json:"contact,omitempty"         yaml:"contact,omitempty"`
	Phone           string              `json:"phone,omitempty"           yaml:"phone,omitempty"`
	Fax             string              `json:"fax,omitempty"             yaml:"fax,omitempty"`
	Description     string              `json:"description,omitempty"     yaml:"description,omitempty"`
	InvoiceCurrency string              `json:"invoiceCurrency,omitempty" yaml:"invoiceCurrency,omitempty"`
	AccountType     CustomerAccountType `json:"accountType,omitempty"     yaml:"accountType,omitempty"`
	PaymentTermID   string              `json:"paymentTermId,omitempty"   yaml:"paymentTermId,omitempty"`
	AccountNumber   string              `json:"accountNumber,omitempty"   yaml:"accountNumber,omitempty"`
	BillingAddress  *CustomerAddress    `json:"billingAddress,omitempty"  yaml:"billingAddress,omitempty"`
	ShippingAddress *CustomerAddress    `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
	Balance         *CustomerBalance    `json:"balance,omitempty"         yaml:"balance,omitempty"`
	CreatedTime     string              `json:"createdTime"               yaml:"createdTime"`
	UpdatedTime     string              `json:"updatedTime"               yaml:"updatedTime"`
}

// CustomerCreateRequest represents a request to create a customer.
type CustomerCreateRequest struct {
	Name            string              `json:"name"                      yaml:"name"`
	Email           string              `json:"email,omitempty"           yaml:"email,omitempty"`
	CompanyName     string              `json:"companyName,omitempty"     yaml:"companyName,omitempty"`
	Contact         *CustomerContact    `json:"contact,omitempty"         yaml:"contact,omitempty"`
	Phone           string              `json:"phone,omitempty"           yaml:"phone,omitempty"`
	Fax             string              `json:"fax,omitempty"             yaml:"fax,omitempty"`
	Description     string              `json:"description,omitempty"     yaml:"description,omitempty"`
	InvoiceCurrency string              `json:"invoiceCurrency,omitempty" yaml:"invoiceCurrency,omitempty"`
	AccountType     CustomerAccountType `json:"accountType,omitempty"     yaml:"accountType,omitempty"`
	PaymentTermID   string              `json:"paymentTermId,omitempty"   yaml:"paymentTermId,omitempty"`
	AccountNumber   string              `json:"accountNumber,omitempty"   yaml:"accountNumber,omitempty"`
	BillingAddress  *CustomerAddress    `json:"billingAddress,omitempty"  yaml:"billingAddress,omitempty"`
	ShippingAddress *CustomerAddress    `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
}

// CustomerUpdateRequest represents a partial update to a customer. Nil fields
// are left unchanged.
type CustomerUpdateRequest struct {
	Name            *string              `json:"name,omitempty"            yaml:"name,omitempty"`
	Email           *string              `json:"email,omitempty"           yaml:"email,omitempty"`
	CompanyName     *string              `json:"companyName,omitempty"     yaml:"companyName,omitempty"`
	Contact         *CustomerContact     `json:"contact,omitempty"         yaml:"contact,omitempty"`
	Phone           *string              `json:"phone,omitempty"           yaml:"phone,omitempty"`
	Fax             *string              `json:"fax,omitempty"             yaml:"fax,omitempty"`
	Description     *string              `json:"description,omitempty"     yaml:"description,omitempty"`
	InvoiceCurrency *string              `json:"invoiceCurrency,omitempty" yaml:"invoiceCurrency,omitempty"`
	AccountType     *CustomerAccountType `json:"accountType,omitempty"     yaml:"accountType,omitempty"`
	PaymentTermID   *string              `json:"paymentTermId,omitempty"   yaml:"paymentTermId,omitempty"`
	AccountNumber   *string              `json:"accountNumber,omitempty"   yaml:"accountNumber,omitempty"`
	BillingAddress  *CustomerAddress     `json:"billingAddress,omitempty"  yaml:"billingAddress,omitempty"`
	ShippingAddress *CustomerAddress     `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
}

// CustomerFilterableFields are the fields accepted in customer list filters.
var CustomerFilterableFields = []string{
	"id", "archived", "name", "email", "companyName", "accountNumber",
	"createdTime", "updatedTime",
}

// CustomerSortableFields are the fields accepted in customer list sorts.
var CustomerSortableFields = []string{"name", "createdTime", "updatedTime"}
