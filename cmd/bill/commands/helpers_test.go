package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-io/bill-client/internal/constants"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParseFilterSpecs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		specs    []string
		expected []bill.Filter
		wantErr  bool
	}{
		{
			name:     "empty",
			specs:    nil,
			expected: nil,
		},
		{
			name:  "scalar equality",
			specs: []string{"archived:eq:false"},
			expected: []bill.Filter{
				bill.ScalarFilter{Field: "archived", Op: bill.FilterEq, Value: "false"},
			},
		},
		{
			name:  "comparison operator",
			specs: []string{"amount:gt:100.50"},
			expected: []bill.Filter{
				bill.ScalarFilter{Field: "amount", Op: bill.FilterGt, Value: "100.50"},
			},
		},
		{
			name:  "set membership splits on commas",
			specs: []string{"status:in:PAID,UNPAID"},
			expected: []bill.Filter{
				bill.ArrayFilter{Field: "status", Op: bill.FilterIn, Values: []string{"PAID", "UNPAID"}},
			},
		},
		{
			name:  "negated set membership",
			specs: []string{"status:nin:VOID"},
			expected: []bill.Filter{
				bill.ArrayFilter{Field: "status", Op: bill.FilterNin, Values: []string{"VOID"}},
			},
		},
		{
			name:  "value may contain colons",
			specs: []string{"updatedTime:gte:2025-01-01T00:00:00.000+00:00"},
			expected: []bill.Filter{
				bill.ScalarFilter{Field: "updatedTime", Op: bill.FilterGte, Value: "2025-01-01T00:00:00.000+00:00"},
			},
		},
		{
			name: "multiple specs preserve order",
			specs: []string{
				"archived:eq:false",
				"name:sw:Acme",
			},
			expected: []bill.Filter{
				bill.ScalarFilter{Field: "archived", Op: bill.FilterEq, Value: "false"},
				bill.ScalarFilter{Field: "name", Op: bill.FilterSw, Value: "Acme"},
			},
		},
		{
			name:    "missing value",
			specs:   []string{"archived:eq"},
			wantErr: true,
		},
		{
			name:    "unknown operator",
			specs:   []string{"archived:like:false"},
			wantErr: true,
		},
		{
			name:    "bare field",
			specs:   []string{"archived"},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			filters, err := parseFilterSpecs(testCase.specs)
			if testCase.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidFilterSpec)

				return
			}

			require.NoError(t, err)

			if len(testCase.expected) == 0 {
				assert.Empty(t, filters)

				return
			}

			assert.Equal(t, testCase.expected, filters)
		})
	}
}

func TestParseSortSpecs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		specs    []string
		expected []bill.SortParam
		wantErr  bool
	}{
		{
			name:     "empty",
			specs:    nil,
			expected: nil,
		},
		{
			name:  "ascending",
			specs: []string{"name:asc"},
			expected: []bill.SortParam{
				{Field: "name", Order: bill.SortAsc},
			},
		},
		{
			name:  "descending",
			specs: []string{"createdTime:desc"},
			expected: []bill.SortParam{
				{Field: "createdTime", Order: bill.SortDesc},
			},
		},
		{
			name:  "multiple keys preserve order",
			specs: []string{"createdTime:desc", "name:asc"},
			expected: []bill.SortParam{
				{Field: "createdTime", Order: bill.SortDesc},
				{Field: "name", Order: bill.SortAsc},
			},
		},
		{
			name:    "missing order",
			specs:   []string{"name"},
			wantErr: true,
		},
		{
			name:    "unknown order",
			specs:   []string{"name:up"},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			sorts, err := parseSortSpecs(testCase.specs)
			if testCase.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidSortSpec)

				return
			}

			require.NoError(t, err)

			if len(testCase.expected) == 0 {
				assert.Empty(t, sorts)

				return
			}

			assert.Equal(t, testCase.expected, sorts)
		})
	}
}

func TestJSONFieldSet(t *testing.T) {
	t.Parallel()

	fields := jsonFieldSet(bill.AccountingClass{})

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "shortName")
	assert.Contains(t, fields, "archived")
	assert.NotContains(t, fields, "ID")
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1250.50", formatAmount(1250.5))
	assert.Equal(t, "0.00", formatAmount(0))
}
