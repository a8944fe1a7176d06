// Package loader reads CSV and Excel inputs into the table model.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"scrubcli/internal/table"
)

// Load-time failures are the only fatal error class: they abort the run
// before any cleaning happens.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrUndecodable       = errors.New("could not decode file with any supported encoding")
)

// Loader reads a delimited text file or a spreadsheet fully into a Table.
// Every non-empty cell is loaded as text; type coercion is the pipeline's
// job, not the loader's.
type Loader struct {
	logger *slog.Logger
}

// New creates a loader. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load dispatches on the file extension. Supported: .csv, .xlsx, .xls.
func (l *Loader) Load(path string) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return l.loadCSV(path)
	case ".xlsx", ".xls":
		return l.loadExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// csvEncodings is the fallback chain tried after UTF-8: Windows-1252 and
// Latin-1 cover the legacy exports this tool sees in practice.
var csvEncodings = []struct {
	name    string
	charmap encoding.Encoding
}{
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

func (l *Loader) loadCSV(path string) (*table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, encodingName, err := decode(raw)
	if err != nil {
		return nil, err
	}
	l.logger.Info("loaded CSV file",
		slog.String("path", path),
		slog.String("encoding", encodingName))

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // ragged input is padded below
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse CSV: file has no header row")
	}
	return fromStrings(records[0], records[1:]), nil
}

func decode(raw []byte) (string, string, error) {
	// Strip a UTF-8 BOM if present; Excel-produced CSVs usually carry one.
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}
	for _, enc := range csvEncodings {
		if decoded, err := enc.charmap.NewDecoder().Bytes(raw); err == nil {
			return string(decoded), enc.name, nil
		}
	}
	return "", "", ErrUndecodable
}

func (l *Loader) loadExcel(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}
	l.logger.Info("loaded Excel file",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", len(rows)-1))
	return fromStrings(rows[0], rows[1:]), nil
}

// fromStrings builds a rectangular Table from a raw string matrix. Short
// rows are padded with missing cells, long rows gain Unnamed columns, empty
// header cells are named, and duplicate headers get .1/.2 suffixes.
func fromStrings(header []string, records [][]string) *table.Table {
	width := len(header)
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if _, dup := seen[name]; dup {
			// suffix from the base name, skipping suffixes the header
			// already uses, so names stay unique
			base := name
			for n := seen[base]; ; n++ {
				candidate := fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[candidate]; !taken {
					seen[base] = n + 1
					name = candidate
					break
				}
			}
		}
		seen[name] = 1
		names[i] = name
	}

	t := table.New(names)
	for _, rec := range records {
		row := make([]table.Cell, width)
		for i := 0; i < width; i++ {
			if i < len(rec) && rec[i] != "" {
				row[i] = table.NewText(rec[i])
			} else {
				row[i] = table.None()
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
