package cleanse

import (
	"log/slog"
	"strings"

	"scrubcli/internal/stats"
	"scrubcli/internal/table"
)

// Result carries the cleaned table together with the statistics snapshots
// taken immediately before the first pass and immediately after the last.
// The pipeline keeps no state between runs; everything flows through here.
type Result struct {
	Table    *table.Table
	Original stats.TableStats
	Cleaned  stats.TableStats
}

// Pipeline applies the five cleaning passes. The zero value is not usable;
// construct with New.
type Pipeline struct {
	logger *slog.Logger
}

// New creates a pipeline. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Clean runs the five passes over a copy of t and returns the cleaned table
// with its before/after statistics. It is deterministic and total: malformed
// cells degrade to missing, never to an error. The input table is not
// mutated.
func (p *Pipeline) Clean(t *table.Table) Result {
	original := stats.Compute(t)

	cur := t.Clone()
	rowsBefore, colsBefore := cur.NumRows(), cur.NumCols()

	cur = pruneEmpty(cur)
	p.logger.Info("pruned empty rows and columns",
		slog.Int("rows_before", rowsBefore),
		slog.Int("cols_before", colsBefore),
		slog.Int("rows_after", cur.NumRows()),
		slog.Int("cols_after", cur.NumCols()))

	trimmed := normalizeText(cur)
	p.logger.Info("normalized text cells", slog.Int("trimmed_cells", trimmed))

	dateCols := standardizeDates(cur)
	if len(dateCols) > 0 {
		p.logger.Info("standardized date columns", slog.Any("columns", dateCols))
	}

	// Normalization and date parsing demote cells to missing, which can
	// leave a row or column fully empty; re-prune so the output never
	// contains one.
	cur = p.reprune(cur)

	dupes := cur.NumRows()
	cur = dropDuplicates(cur)
	dupes -= cur.NumRows()
	if dupes > 0 {
		p.logger.Info("removed duplicate rows", slog.Int("count", dupes))
	}

	numericCols := coerceNumeric(cur)
	for _, name := range numericCols {
		p.logger.Info("converted column to numeric", slog.String("column", name))
	}

	// Numeric coercion can blank a row the same way; see reprune above.
	cur = p.reprune(cur)

	return Result{Table: cur, Original: original, Cleaned: stats.Compute(cur)}
}

// reprune drops rows and columns that a lossy pass left fully missing.
func (p *Pipeline) reprune(t *table.Table) *table.Table {
	rows, cols := t.NumRows(), t.NumCols()
	t = pruneEmpty(t)
	if t.NumRows() != rows || t.NumCols() != cols {
		p.logger.Debug("pruned rows and columns blanked by cleaning",
			slog.Int("rows_removed", rows-t.NumRows()),
			slog.Int("cols_removed", cols-t.NumCols()))
	}
	return t
}

// pruneEmpty drops rows where every cell is missing, then columns where
// every remaining cell is missing. Rows go first: a column kept alive only
// by values in fully-empty rows cannot exist, but the reverse can.
func pruneEmpty(t *table.Table) *table.Table {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		empty := true
		for _, c := range row {
			if !c.IsMissing() {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	var keepCols []int
	for i := range t.Columns {
		empty := true
		for _, row := range t.Rows {
			if !row[i].IsMissing() {
				empty = false
				break
			}
		}
		if !empty {
			keepCols = append(keepCols, i)
		}
	}
	if len(keepCols) == len(t.Columns) {
		return t
	}

	out := table.New(make([]string, 0, len(keepCols)))
	for _, i := range keepCols {
		out.Columns = append(out.Columns, t.Columns[i])
	}
	for _, row := range t.Rows {
		nr := make([]table.Cell, 0, len(keepCols))
		for _, i := range keepCols {
			nr = append(nr, row[i])
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// normalizeText trims whitespace from every text cell; a cell that trims to
// the empty token becomes missing. Returns the number of cells changed.
func normalizeText(t *table.Table) int {
	changed := 0
	for _, row := range t.Rows {
		for i, c := range row {
			if c.Kind != table.Text {
				continue
			}
			trimmed := strings.TrimSpace(c.Str)
			switch {
			case trimmed == "":
				row[i] = table.None()
				changed++
			case trimmed != c.Str:
				row[i] = table.NewText(trimmed)
				changed++
			}
		}
	}
	return changed
}

// standardizeDates selects date-like columns and rewrites their values as
// parsed dates. Values that fail the permissive parse become missing; the
// loss is accepted as best-effort normalization. Returns the names of the
// columns converted.
func standardizeDates(t *table.Table) []string {
	var converted []string
	for i, name := range t.Columns {
		if !isDateColumn(name, t.Column(i)) {
			continue
		}
		for _, row := range t.Rows {
			c := row[i]
			if c.IsMissing() {
				continue
			}
			if ts, ok := parseDate(cellString(c)); ok {
				row[i] = table.NewDate(ts)
			} else {
				row[i] = table.None()
			}
		}
		converted = append(converted, name)
	}
	return converted
}

// dropDuplicates removes rows that exactly duplicate an earlier row,
// keeping the first occurrence. Equality covers both cell kind and value,
// evaluated on the table as transformed by the earlier passes.
func dropDuplicates(t *table.Table) *table.Table {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	for r := range t.Rows {
		key := t.RowKey(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, t.Rows[r])
	}
	t.Rows = kept
	return t
}

// coerceNumeric converts a text column to numbers when more than
// numericParseThreshold of its non-missing values parse after junk-character
// stripping. Columns at or below the threshold stay untouched. Returns the
// names of the columns converted.
func coerceNumeric(t *table.Table) []string {
	var converted []string
	for i, name := range t.Columns {
		col := t.Column(i)
		if !isTextColumn(col) {
			continue
		}
		nonMissing, parsed := 0, 0
		for _, c := range col {
			if c.IsMissing() {
				continue
			}
			nonMissing++
			if _, ok := parseNumber(c.Str); ok {
				parsed++
			}
		}
		if nonMissing == 0 || float64(parsed)/float64(nonMissing) <= numericParseThreshold {
			continue
		}
		for _, row := range t.Rows {
			c := row[i]
			if c.IsMissing() {
				continue
			}
			if f, ok := parseNumber(c.Str); ok {
				row[i] = table.NewNumber(f)
			} else {
				row[i] = table.None()
			}
		}
		converted = append(converted, name)
	}
	return converted
}

// isTextColumn reports whether every non-missing cell is text. Columns
// already standardized to dates or loaded as numbers are left alone by the
// numeric pass.
func isTextColumn(cells []table.Cell) bool {
	any := false
	for _, c := range cells {
		switch c.Kind {
		case table.Missing:
		case table.Text:
			any = true
		default:
			return false
		}
	}
	return any
}
