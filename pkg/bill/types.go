package bill

// Environment selects which Bill.com gateway the client talks to.
type Environment string

// Supported environments.
const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// Credentials identify a Bill.com user within an organization.
type Credentials struct {
	Username       string `json:"username"       yaml:"username"`
	Password       string `json:"password"       yaml:"password"`
	OrganizationID string `json:"organizationId" yaml:"organizationId"`
	DevKey         string `json:"devKey"         yaml:"devKey"`
}

// Session holds the server-issued token set proving an authenticated context.
// It is created by Login and discarded by Logout.
type Session struct {
	SessionID      string `json:"sessionId"      yaml:"sessionId"`
	OrganizationID string `json:"organizationId" yaml:"organizationId"`
	UserID         string `json:"userId"         yaml:"userId"`
	APIEndPoint    string `json:"apiEndPoint"    yaml:"apiEndPoint"`
}

// ListResponse represents a paginated list response. NextPage and PrevPage are
// opaque continuation tokens for the page parameter of a subsequent list call.
type ListResponse[T any] struct {
	NextPage string `json:"nextPage,omitempty" yaml:"nextPage,omitempty"`
	PrevPage string `json:"prevPage,omitempty" yaml:"prevPage,omitempty"`
	Results  []T    `json:"results"            yaml:"results"`
}
