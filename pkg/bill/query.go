package bill

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledgerline-io/bill-client/internal/constants"
)

// FilterOp is a filter operator accepted by the Bill.com list endpoints.
type FilterOp string

// Scalar operators.
const (
	FilterEq  FilterOp = "eq"
	FilterNe  FilterOp = "ne"
	FilterGt  FilterOp = "gt"
	FilterGte FilterOp = "gte"
	FilterLt  FilterOp = "lt"
	FilterLte FilterOp = "lte"
	FilterSw  FilterOp = "sw"
)

// Array operators.
const (
	FilterIn  FilterOp = "in"
	FilterNin FilterOp = "nin"
)

// SortOrder is the direction of a sort key.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortParam is a single sort key. Keys are serialized in array order.
type SortParam struct {
	Field string
	Order SortOrder
}

// Filter is a single field/operator/value predicate used to narrow a list
// query. ScalarFilter and ArrayFilter are the only two implementations;
// serialization is a total switch over those shapes.
type Filter interface {
	// queryString renders the filter in the provider's field:op:value dialect.
	queryString() string
}

// ScalarFilter matches a field against a single string, number, or boolean
// value with one of the scalar operators (eq, ne, gt, gte, lt, lte, sw).
type ScalarFilter struct {
	Field string
	Op    FilterOp
	Value any
}

// ArrayFilter matches a field against a set of values with in or nin.
type ArrayFilter struct {
	Field  string
	Op     FilterOp
	Values []string
}

// Values that look like ISO 8601 dates or date-times must be quoted in the
// filter dialect regardless of operator.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2})?`)

func (f ScalarFilter) queryString() string {
	value, isString := formatScalarValue(f.Value)

	quoted := isString && (f.Op == FilterSw || isoDatePattern.MatchString(value))
	if quoted {
		return fmt.Sprintf("%s:%s:%q", f.Field, f.Op, value)
	}

	return fmt.Sprintf("%s:%s:%s", f.Field, f.Op, value)
}

func (f ArrayFilter) queryString() string {
	return fmt.Sprintf("%s:%s:%q", f.Field, f.Op, strings.Join(f.Values, ","))
}

// formatScalarValue renders a scalar filter value, reporting whether the input
// was a string (only strings are candidates for quoting).
func formatScalarValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), false
	case int:
		return strconv.Itoa(v), false
	case int64:
		return strconv.FormatInt(v, 10), false
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), false
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), false
	default:
		return fmt.Sprint(v), false
	}
}

// ListParams expresses pagination, filtering, and sorting for list calls.
// Filters and sort keys are serialized in the order they were supplied.
type ListParams struct {
	// Max is the page size, 1 to 100. Nil leaves the provider default.
	Max *int
	// Page is an opaque continuation token from a previous ListResponse.
	Page    string
	Filters []Filter
	Sort    []SortParam
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithMax sets the page size.
func (p *ListParams) WithMax(max int) *ListParams {
	p.Max = &max

	return p
}

// WithPage sets the continuation token.
func (p *ListParams) WithPage(token string) *ListParams {
	p.Page = token

	return p
}

// WithFilter appends a filter.
func (p *ListParams) WithFilter(filter Filter) *ListParams {
	p.Filters = append(p.Filters, filter)

	return p
}

// WithSort appends a sort key.
func (p *ListParams) WithSort(field string, order SortOrder) *ListParams {
	p.Sort = append(p.Sort, SortParam{Field: field, Order: order})

	return p
}

// clone returns a deep copy so page walkers can advance the continuation
// token without mutating the caller's params.
func (p *ListParams) clone() *ListParams {
	if p == nil {
		return NewListParams()
	}

	clone := *p

	if p.Max != nil {
		max := *p.Max
		clone.Max = &max
	}

	clone.Filters = append([]Filter(nil), p.Filters...)
	clone.Sort = append([]SortParam(nil), p.Sort...)

	return &clone
}

// Validate checks local invariants. It is called by every list operation
// before any network I/O.
func (p *ListParams) Validate() error {
	if p == nil {
		return nil
	}

	if p.Max != nil && (*p.Max < constants.MinPageSize || *p.Max > constants.MaxPageSize) {
		return fmt.Errorf("%w, got %d", ErrMaxOutOfRange, *p.Max)
	}

	return nil
}

// ToValues converts the params to URL query values in the provider's dialect.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Max != nil {
		values.Set("max", strconv.Itoa(*p.Max))
	}

	if p.Page != "" {
		values.Set("page", p.Page)
	}

	if len(p.Sort) > 0 {
		parts := make([]string, 0, len(p.Sort))
		for _, s := range p.Sort {
			parts = append(parts, fmt.Sprintf("%s:%s", s.Field, s.Order))
		}

		values.Set("sort", strings.Join(parts, ","))
	}

	if len(p.Filters) > 0 {
		parts := make([]string, 0, len(p.Filters))
		for _, f := range p.Filters {
			parts = append(parts, f.queryString())
		}

		values.Set("filters", strings.Join(parts, ","))
	}

	return values
}

// Encode renders the params as a query string without a leading "?". The
// result is empty when no parameters are set.
func (p *ListParams) Encode() string {
	return p.ToValues().Encode()
}
