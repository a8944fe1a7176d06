// Package stats computes descriptive metrics of a table snapshot and lays
// them out as the fixed summary-sheet row sequence of the cleanup report.
package stats

import (
	"strconv"

	"scrubcli/internal/table"
)

// ColumnStats describes one column of a snapshot.
type ColumnStats struct {
	UniqueValues int
	NullCount    int
	DataType     string
}

// TableStats is an immutable snapshot of a table's shape and quality
// metrics. It is computed as a pure function of the table and never
// mutated afterwards.
type TableStats struct {
	TotalRows       int
	TotalColumns    int
	EmptyRows       int
	EmptyColumns    int
	DuplicateRows   int
	TotalEmptyCells int
	Columns         map[string]ColumnStats
	// ColumnOrder preserves the table's column order for report layout;
	// Columns alone would lose it.
	ColumnOrder []string
}

// Compute takes a snapshot of t. O(rows x columns).
//
// The per-column data type reports what the cells already are at call time
// (text, numeric, date, or mixed), not a re-detection of what they could be
// parsed into. Duplicate counting uses the same full-row equality rule as
// the pipeline's duplicate-elimination pass.
func Compute(t *table.Table) TableStats {
	s := TableStats{
		TotalRows:    t.NumRows(),
		TotalColumns: t.NumCols(),
		Columns:      make(map[string]ColumnStats, t.NumCols()),
		ColumnOrder:  append([]string(nil), t.Columns...),
	}

	seen := make(map[string]struct{}, t.NumRows())
	for r := range t.Rows {
		empty := true
		for _, c := range t.Rows[r] {
			if c.IsMissing() {
				s.TotalEmptyCells++
			} else {
				empty = false
			}
		}
		if empty && t.NumCols() > 0 {
			s.EmptyRows++
		}
		key := t.RowKey(r)
		if _, dup := seen[key]; dup {
			s.DuplicateRows++
		} else {
			seen[key] = struct{}{}
		}
	}

	for i, name := range t.Columns {
		s.Columns[name] = computeColumn(t.Column(i))
		if s.Columns[name].NullCount == t.NumRows() && t.NumRows() > 0 {
			s.EmptyColumns++
		}
	}
	return s
}

func computeColumn(cells []table.Cell) ColumnStats {
	cs := ColumnStats{}
	unique := make(map[string]struct{})
	kind := table.Missing
	mixed := false
	for _, c := range cells {
		if c.IsMissing() {
			cs.NullCount++
			continue
		}
		unique[cellKey(c)] = struct{}{}
		if kind == table.Missing {
			kind = c.Kind
		} else if kind != c.Kind {
			mixed = true
		}
	}
	cs.UniqueValues = len(unique)
	switch {
	case mixed:
		cs.DataType = "mixed"
	case kind == table.Missing:
		// nothing observed; report the loader's representation
		cs.DataType = table.Text.String()
	default:
		cs.DataType = kind.String()
	}
	return cs
}

func cellKey(c table.Cell) string {
	switch c.Kind {
	case table.Number:
		return "n:" + strconv.FormatFloat(c.Num, 'g', -1, 64)
	case table.Date:
		return "d:" + c.Time.String()
	default:
		return "t:" + c.Str
	}
}

// SummaryRows renders the before/after statistics pair as the ordered row
// sequence of the report's summary sheet:
//
//	header, six metric rows, blank separator, "Column Statistics" label,
//	column-stats header, one row per surviving column.
//
// Any renderer can reproduce the summary sheet losslessly from this
// sequence.
func SummaryRows(before, after TableStats) [][]string {
	rows := [][]string{
		{"Metric", "Original", "Cleaned", "Change"},
		metricRow("Total Rows", before.TotalRows, after.TotalRows),
		metricRow("Total Columns", before.TotalColumns, after.TotalColumns),
		removedRow("Empty Rows Removed", before.EmptyRows),
		removedRow("Empty Columns Removed", before.EmptyColumns),
		removedRow("Duplicate Rows Removed", before.DuplicateRows),
		metricRow("Total Empty Cells", before.TotalEmptyCells, after.TotalEmptyCells),
		{"", "", "", ""},
		{"Column Statistics", "", "", ""},
		{"Column Name", "Unique Values", "Null Count", "Data Type"},
	}
	for _, name := range after.ColumnOrder {
		cs := after.Columns[name]
		rows = append(rows, []string{
			name,
			strconv.Itoa(cs.UniqueValues),
			strconv.Itoa(cs.NullCount),
			cs.DataType,
		})
	}
	return rows
}

func metricRow(name string, original, cleaned int) []string {
	return []string{name, strconv.Itoa(original), strconv.Itoa(cleaned), strconv.Itoa(cleaned - original)}
}

func removedRow(name string, original int) []string {
	return []string{name, strconv.Itoa(original), "0", strconv.Itoa(-original)}
}
