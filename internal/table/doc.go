// Package table defines the in-memory tabular data model shared by the
// loader, the cleaning pipeline, the statistics collector and the report
// emitter.
//
// A Table is a rectangular grid: an ordered list of unique column names and
// one slice of cells per row. Each Cell is a tagged variant holding exactly
// one of {missing, text, number, date}, which keeps the mixed-then-coerced
// column transitions of the cleaning pipeline explicit instead of hiding
// them behind a dynamic type.
package table
