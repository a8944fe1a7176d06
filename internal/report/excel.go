// Package report renders the cleaned table and its statistics summary into
// output files: a two-sheet formatted Excel workbook and, optionally, a
// plain CSV of the cleaned data.
package report

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"scrubcli/internal/stats"
	"scrubcli/internal/table"
)

const (
	dataSheet    = "Cleaned Data"
	summarySheet = "Summary"

	headerFillColor  = "366092" // data-sheet header background
	emptyFillColor   = "FFCCCC" // highlight for cells left missing
	summaryFillColor = "70AD47" // summary header rows
)

// dateCellFormat is how standardized dates appear in the workbook.
const dateCellFormat = "2006-01-02 15:04:05"

// Writer renders cleanup results to disk.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a report writer. A nil logger falls back to
// slog.Default().
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteExcel writes the two-sheet report: the cleaned table verbatim on the
// first sheet and the fixed-layout statistics summary on the second. A
// styling failure only warns; the data in the workbook is already correct
// and is saved regardless.
func (w *Writer) WriteExcel(path string, t *table.Table, before, after stats.TableStats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeData(f, t); err != nil {
		return fmt.Errorf("failed to write data sheet: %w", err)
	}
	summary := stats.SummaryRows(before, after)
	if err := w.writeSummary(f, summary); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := w.applyStyles(f, t, len(summary)); err != nil {
		w.logger.Warn("could not apply workbook formatting", slog.String("error", err.Error()))
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	w.logger.Info("saved Excel report",
		slog.String("path", path),
		slog.Int("data_rows", t.NumRows()),
		slog.Int("summary_rows", len(summary)))
	return nil
}

func (w *Writer) writeData(f *excelize.File, t *table.Table) error {
	if _, err := f.NewSheet(dataSheet); err != nil {
		return err
	}
	for i, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(dataSheet, cell, name); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for i, c := range row {
			if c.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dataSheet, cell, cellValue(c)); err != nil {
				return err
			}
		}
	}
	return nil
}

func cellValue(c table.Cell) interface{} {
	switch c.Kind {
	case table.Number:
		return c.Num
	case table.Date:
		return c.Time.Format(dateCellFormat)
	default:
		return c.Str
	}
}

func (w *Writer) writeSummary(f *excelize.File, rows [][]string) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	for r, row := range rows {
		for i, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyStyles adds the cosmetic formatting: colored bold headers on both
// sheets and a light-red fill on cells the pipeline left missing.
func (w *Writer) applyStyles(f *excelize.File, t *table.Table, summaryLen int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Font: &excelize.Font{Color: "FFFFFF", Bold: true},
	})
	if err != nil {
		return err
	}
	emptyStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{emptyFillColor}},
	})
	if err != nil {
		return err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{summaryFillColor}},
		Font: &excelize.Font{Color: "FFFFFF", Bold: true},
	})
	if err != nil {
		return err
	}

	if t.NumCols() > 0 {
		first, err := excelize.CoordinatesToCellName(1, 1)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(t.NumCols(), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(dataSheet, first, last, headerStyle); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for i, c := range row {
			if !c.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(dataSheet, cell, cell, emptyStyle); err != nil {
				return err
			}
		}
	}

	// Summary layout: row 1 is the metric header, row 9 the section label
	// and row 10 the column-stats header.
	for _, r := range []int{1, 9, 10} {
		if r > summaryLen {
			continue
		}
		first, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(4, r)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, first, last, summaryStyle); err != nil {
			return err
		}
	}
	return nil
}
