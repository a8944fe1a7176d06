package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		dir      string
		expected string
	}{
		{
			name:     "csv input",
			input:    "sales.csv",
			dir:      ".",
			expected: "sales_cleaned_20260823_153000.xlsx",
		},
		{
			name:     "input path is flattened to its base name",
			input:    filepath.Join("data", "raw", "export.xlsx"),
			dir:      ".",
			expected: "export_cleaned_20260823_153000.xlsx",
		},
		{
			name:     "output directory from config",
			input:    "sales.csv",
			dir:      "reports",
			expected: filepath.Join("reports", "sales_cleaned_20260823_153000.xlsx"),
		},
		{
			name:     "empty dir defaults to cwd",
			input:    "sales.csv",
			dir:      "",
			expected: "sales_cleaned_20260823_153000.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, defaultOutputPath(tt.input, tt.dir, now))
		})
	}
}
