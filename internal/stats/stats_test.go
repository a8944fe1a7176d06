package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrubcli/internal/table"
)

func buildTable(t *testing.T, columns []string, rows [][]table.Cell) *table.Table {
	t.Helper()
	tbl := table.New(columns)
	for _, row := range rows {
		require.NoError(t, tbl.AppendRow(row))
	}
	return tbl
}

func TestCompute(t *testing.T) {
	tbl := buildTable(t, []string{"name", "amount", "empty"}, [][]table.Cell{
		{table.NewText("a"), table.NewNumber(1), table.None()},
		{table.NewText("b"), table.NewNumber(2), table.None()},
		{table.None(), table.None(), table.None()},
		{table.NewText("a"), table.NewNumber(1), table.None()},
	})

	s := Compute(tbl)

	assert.Equal(t, 4, s.TotalRows)
	assert.Equal(t, 3, s.TotalColumns)
	assert.Equal(t, 1, s.EmptyRows)
	assert.Equal(t, 1, s.EmptyColumns)
	assert.Equal(t, 1, s.DuplicateRows)
	assert.Equal(t, 6, s.TotalEmptyCells)

	name := s.Columns["name"]
	assert.Equal(t, 2, name.UniqueValues)
	assert.Equal(t, 1, name.NullCount)
	assert.Equal(t, "text", name.DataType)

	amount := s.Columns["amount"]
	assert.Equal(t, 2, amount.UniqueValues)
	assert.Equal(t, "numeric", amount.DataType)

	empty := s.Columns["empty"]
	assert.Equal(t, 0, empty.UniqueValues)
	assert.Equal(t, 4, empty.NullCount)
	assert.Equal(t, "text", empty.DataType)
}

func TestComputeInferredTypes(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cells    [][]table.Cell
		expected string
	}{
		{
			name:     "all dates",
			cells:    [][]table.Cell{{table.NewDate(day)}, {table.NewDate(day)}},
			expected: "date",
		},
		{
			name:     "date and number is mixed",
			cells:    [][]table.Cell{{table.NewDate(day)}, {table.NewNumber(3)}},
			expected: "mixed",
		},
		{
			name:     "missing does not mix",
			cells:    [][]table.Cell{{table.None()}, {table.NewNumber(3)}},
			expected: "numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := buildTable(t, []string{"c"}, tt.cells)
			assert.Equal(t, tt.expected, Compute(tbl).Columns["c"].DataType)
		})
	}
}

func TestComputeDuplicatesDistinguishKind(t *testing.T) {
	tbl := buildTable(t, []string{"v"}, [][]table.Cell{
		{table.NewText("5")},
		{table.NewNumber(5)},
	})
	assert.Equal(t, 0, Compute(tbl).DuplicateRows)
}

func TestSummaryRowsLayout(t *testing.T) {
	before := TableStats{
		TotalRows: 10, TotalColumns: 4,
		EmptyRows: 2, EmptyColumns: 1,
		DuplicateRows: 3, TotalEmptyCells: 9,
	}
	after := TableStats{
		TotalRows: 5, TotalColumns: 3, TotalEmptyCells: 1,
		ColumnOrder: []string{"b", "a"},
		Columns: map[string]ColumnStats{
			"a": {UniqueValues: 5, NullCount: 0, DataType: "numeric"},
			"b": {UniqueValues: 4, NullCount: 1, DataType: "text"},
		},
	}

	rows := SummaryRows(before, after)
	require.Len(t, rows, 12)

	assert.Equal(t, []string{"Metric", "Original", "Cleaned", "Change"}, rows[0])
	assert.Equal(t, []string{"Total Rows", "10", "5", "-5"}, rows[1])
	assert.Equal(t, []string{"Total Columns", "4", "3", "-1"}, rows[2])
	assert.Equal(t, []string{"Empty Rows Removed", "2", "0", "-2"}, rows[3])
	assert.Equal(t, []string{"Empty Columns Removed", "1", "0", "-1"}, rows[4])
	assert.Equal(t, []string{"Duplicate Rows Removed", "3", "0", "-3"}, rows[5])
	assert.Equal(t, []string{"Total Empty Cells", "9", "1", "-8"}, rows[6])
	assert.Equal(t, []string{"", "", "", ""}, rows[7])
	assert.Equal(t, []string{"Column Statistics", "", "", ""}, rows[8])
	assert.Equal(t, []string{"Column Name", "Unique Values", "Null Count", "Data Type"}, rows[9])

	// column rows follow the table's column order, not map order
	assert.Equal(t, []string{"b", "4", "1", "text"}, rows[10])
	assert.Equal(t, []string{"a", "5", "0", "numeric"}, rows[11])
}

func TestComputeEmptyTable(t *testing.T) {
	s := Compute(table.New([]string{"a"}))
	assert.Equal(t, 0, s.TotalRows)
	assert.Equal(t, 1, s.TotalColumns)
	assert.Equal(t, 0, s.EmptyRows)
	assert.Equal(t, 0, s.EmptyColumns)
	assert.Equal(t, "text", s.Columns["a"].DataType)
}
