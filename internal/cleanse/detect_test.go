package cleanse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrubcli/internal/table"
)

func textCells(values ...string) []table.Cell {
	cells := make([]table.Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = table.None()
		} else {
			cells[i] = table.NewText(v)
		}
	}
	return cells
}

func TestIsDateColumn(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		cells    []table.Cell
		expected bool
	}{
		{
			name:     "keyword in name",
			column:   "Birth Year",
			cells:    textCells("whatever"),
			expected: true,
		},
		{
			name:     "keyword is case insensitive",
			column:   "UPDATED_AT",
			cells:    textCells("whatever"),
			expected: true,
		},
		{
			name:     "already dates never requalifies",
			column:   "date",
			cells:    []table.Cell{table.NewDate(time.Now())},
			expected: false,
		},
		{
			name:     "no values never qualifies by content",
			column:   "x",
			cells:    textCells("", "", ""),
			expected: false,
		},
		{
			name:     "all sampled values match",
			column:   "x",
			cells:    textCells("2024-1-5", "12/31/2023", "1-2-2024", "2024/3/4"),
			expected: true,
		},
		{
			name:     "missing values skipped when sampling",
			column:   "x",
			cells:    textCells("", "2024-01-01", "", "2024-02-01"),
			expected: true,
		},
		{
			name:     "exactly 70 percent is not enough",
			column:   "x",
			cells:    textCells("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07", "a", "b", "c"),
			expected: false,
		},
		{
			name:   "only first ten sampled",
			column: "x",
			cells: textCells(
				"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
				"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
			),
			expected: false,
		},
		{
			name:     "pattern anchored at start",
			column:   "x",
			cells:    textCells("on 2024-01-01", "at 2024-01-02"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isDateColumn(tt.column, tt.cells))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "iso date",
			input:    "2024-01-02",
			expected: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "single digit month and day",
			input:    "2024-1-2",
			expected: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "slash month first",
			input:    "3/15/2024",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "dash month first",
			input:    "3-15-2024",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "year first with slashes",
			input:    "2024/3/15",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "datetime",
			input:    "2024-01-02 13:45:00",
			expected: time.Date(2024, 1, 2, 13, 45, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "month name",
			input:    "Jan 2, 2024",
			expected: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "surrounding whitespace",
			input:    "  2024-01-02  ",
			expected: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "garbage",
			input: "hello",
			ok:    false,
		},
		{
			name:  "empty",
			input: "   ",
			ok:    false,
		},
		{
			name:  "impossible month",
			input: "2024-13-01",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got), "got %v", got)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "plain integer", input: "42", expected: 42, ok: true},
		{name: "decimal", input: "3.14", expected: 3.14, ok: true},
		{name: "negative", input: "-7.5", expected: -7.5, ok: true},
		{name: "thousands separator", input: "1,234,567", expected: 1234567, ok: true},
		{name: "currency", input: "$99.95", expected: 99.95, ok: true},
		{name: "percent", input: "85%", expected: 85, ok: true},
		{name: "combined junk", input: " $1,250.00 ", expected: 1250, ok: true},
		{name: "scientific notation", input: "1e3", expected: 1000, ok: true},
		{name: "words", input: "n/a", ok: false},
		{name: "empty after stripping", input: "$,%", ok: false},
		{name: "blank", input: "  ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNumber(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
