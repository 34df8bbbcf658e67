// Package cellio defines the cell stream produced by reading one column of
// a tabular file.  Each supported format has its own reader package
// (csvio, parquetio) implementing the Reader interface; the ingest package
// dispatches on format and runs the same counting, validation, and loading
// logic over any of them.
package cellio

import "errors"

var (
	// ErrNotInteger indicates a cell whose text does not parse as a
	// non-negative decimal integer.
	ErrNotInteger = errors.New("not a non-negative integer")
	// ErrNegative indicates a signed storage value below zero.
	ErrNegative = errors.New("negative value")
)

// Cell is one value of the selected column.  Readers produce exactly one
// cell per data row.
type Cell struct {
	// Row is the 1-based data-row index, counted after any header line
	// and with blank rows skipped.
	Row uint64
	// Text is the raw cell text for diagnostics.
	Text string
	// Null is true when the cell is empty or its stored value is null.
	Null bool
	// Value holds the cell's value when Err is nil and Null is false.
	Value uint64
	// Err reports why the cell cannot be stored as a non-negative
	// integer.  A cell with a non-nil Err still counts as a data row.
	Err error
}

// Reader wraps the Read method.
//
// Read returns the next cell and a nil error, a nil cell and the next
// error, or a nil cell and nil error when no cells remain.  Read never
// returns io.EOF.
type Reader interface {
	Read() (*Cell, error)
}

// RowCounter is implemented by readers that know the source's total row
// count from its own metadata, without scanning cells.
type RowCounter interface {
	NumRows() uint64
}
