// Package cleanse implements the data-quality repair pipeline.
//
// The pipeline runs five passes over a table, strictly in order: structural
// pruning of fully-empty rows and columns, text normalization, date
// standardization, duplicate elimination, and numeric coercion. Each pass is
// total: a cell that cannot be interpreted under a pass's rule degrades to
// missing instead of raising an error. The pipeline never fails; only the
// loader can.
//
// Cleaning is idempotent: running the pipeline over its own output yields an
// equal table.
package cleanse
