package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"scrubcli/internal/table"
)

// WriteCSV writes the cleaned table as a CSV file. A UTF-8 BOM is prepended
// so Excel opens the file with the right encoding. Missing cells become
// empty fields.
func (w *Writer) WriteCSV(path string, t *table.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for r, row := range t.Rows {
		rec := make([]string, len(row))
		for i, c := range row {
			rec[i] = csvField(c)
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write record %d: %w", r, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	w.logger.Info("saved CSV export",
		slog.String("path", path),
		slog.Int("rows", t.NumRows()))
	return nil
}

func csvField(c table.Cell) string {
	switch c.Kind {
	case table.Number:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case table.Date:
		return c.Time.Format(dateCellFormat)
	case table.Text:
		return c.Str
	default:
		return ""
	}
}
