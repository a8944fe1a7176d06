package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the value held by a Cell.
type Kind int

const (
	Missing Kind = iota
	Text
	Number
	Date
)

// String returns the lowercase name used in reports and logs.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Number:
		return "numeric"
	case Date:
		return "date"
	default:
		return "missing"
	}
}

// Cell is one value at a row/column position. Exactly one of the value
// fields is meaningful, selected by Kind; a Missing cell carries none.
type Cell struct {
	Kind Kind
	Str  string
	Num  float64
	Time time.Time
}

// None returns the missing cell.
func None() Cell { return Cell{Kind: Missing} }

// NewText returns a text cell holding s.
func NewText(s string) Cell { return Cell{Kind: Text, Str: s} }

// NewNumber returns a numeric cell holding f.
func NewNumber(f float64) Cell { return Cell{Kind: Number, Num: f} }

// NewDate returns a date cell holding t.
func NewDate(t time.Time) Cell { return Cell{Kind: Date, Time: t} }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.Kind == Missing }

// Equal reports whether two cells hold the same kind and value.
func (c Cell) Equal(o Cell) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case Text:
		return c.Str == o.Str
	case Number:
		return c.Num == o.Num
	case Date:
		return c.Time.Equal(o.Time)
	default:
		return true
	}
}

// key returns a canonical encoding of the cell, including its kind, so that
// rows can be compared for exact duplication with a single string compare.
func (c Cell) key() string {
	switch c.Kind {
	case Text:
		return "t:" + c.Str
	case Number:
		return "n:" + strconv.FormatFloat(c.Num, 'g', -1, 64)
	case Date:
		return "d:" + c.Time.Format(time.RFC3339Nano)
	default:
		return "m:"
	}
}

// Table is an in-memory rectangular dataset: an ordered list of unique
// column names and one row of cells per record. Every row has exactly
// len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// AppendRow adds a row to the table. The row must match the column count.
func (t *Table) AppendRow(row []Cell) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Column returns the cells of column i in row order.
func (t *Table) Column(i int) []Cell {
	col := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col
}

// RowKey returns a canonical encoding of row r for exact-duplicate
// comparison. Two rows are duplicates iff their keys are equal.
func (t *Table) RowKey(r int) string {
	var b strings.Builder
	for i, c := range t.Rows[r] {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(c.key())
	}
	return b.String()
}

// Equal reports whether two tables have identical columns and cells.
func (t *Table) Equal(o *Table) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != o.Columns[i] {
			return false
		}
	}
	for r := range t.Rows {
		for c := range t.Rows[r] {
			if !t.Rows[r][c].Equal(o.Rows[r][c]) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the table. Pipeline passes operate on a
// clone so the caller's snapshot is never mutated.
func (t *Table) Clone() *Table {
	cp := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Cell, len(t.Rows)),
	}
	for r, row := range t.Rows {
		cp.Rows[r] = append([]Cell(nil), row...)
	}
	return cp
}
