// Command scrub cleans a tabular dataset and writes a formatted Excel
// report.
//
// Usage:
//
//	scrub [-o output.xlsx] [-v] [-csv] input.{csv,xlsx,xls}
//
// The input is loaded fully into memory, run through the five-pass cleaning
// pipeline, and written out as a two-sheet workbook: the cleaned data plus a
// before/after statistics summary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scrubcli/internal/cleanse"
	"scrubcli/internal/config"
	"scrubcli/internal/infrastructure"
	"scrubcli/internal/loader"
	"scrubcli/internal/report"
)

func main() {
	out := flag.String("o", "", "output xlsx file path (defaults to <input>_cleaned_<timestamp>.xlsx)")
	verbose := flag.Bool("v", false, "enable verbose output")
	exportCSV := flag.Bool("csv", false, "also export the cleaned data as CSV")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scrub [-o output.xlsx] [-v] [-csv] <input file>")
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if _, err := os.Stat(input); err != nil {
		logger.Error("Input file not found", slog.String("path", input))
		fmt.Fprintf(os.Stderr, "error: input file %q not found\n", input)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = defaultOutputPath(input, cfg.Report.OutputDir, time.Now())
	}

	logger.Info("Starting data cleanup",
		slog.String("input", input),
		slog.String("output", outPath))
	fmt.Printf("Cleaning %s\n", input)

	ld := loader.New(logger)
	t, err := ld.Load(input)
	if err != nil {
		logger.Error("Failed to load input", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error loading file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d rows and %d columns\n", t.NumRows(), t.NumCols())

	result := cleanse.New(logger).Clean(t)
	fmt.Printf("Cleanup complete: %d rows, %d columns\n",
		result.Table.NumRows(), result.Table.NumCols())

	writer := report.NewWriter(logger)
	if err := writer.WriteExcel(outPath, result.Table, result.Original, result.Cleaned); err != nil {
		logger.Error("Failed to save report", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error saving report: %v\n", err)
		os.Exit(1)
	}

	if *exportCSV || cfg.Report.ExportCSV {
		csvPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".csv"
		if err := writer.WriteCSV(csvPath, result.Table); err != nil {
			logger.Error("Failed to save CSV export", slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "error saving CSV export: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CSV export: %s\n", csvPath)
	}

	logger.Info("Data cleanup completed",
		slog.Int("rows", result.Table.NumRows()),
		slog.Int("columns", result.Table.NumCols()),
		slog.String("output", outPath))
	fmt.Printf("Report saved: %s\n", outPath)
}

// defaultOutputPath derives the report name from the input file, e.g.
// sales.csv -> sales_cleaned_20260823_153000.xlsx.
func defaultOutputPath(input, dir string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := fmt.Sprintf("%s_cleaned_%s.xlsx", base, now.Format("20060102_150405"))
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
