package ingest

import (
	"errors"
	"fmt"

	"github.com/veripir/pirdb"
	"github.com/veripir/pirdb/pir"
	"go.uber.org/zap"
)

var (
	// ErrUnknownFormat indicates a path whose extension names no
	// supported format.
	ErrUnknownFormat = errors.New("unrecognized file format (supported: .csv, .parquet)")
	// ErrEmptySource indicates a source with no usable data rows.
	ErrEmptySource = errors.New("no data rows found")
)

// Options configures an ingestion call.
type Options struct {
	// Column selects the column by name; empty selects the first column.
	Column string
	// Header indicates a delimited-text source begins with a heading.
	Header bool
	// MaxRows caps how many rows are loaded; zero means no cap.
	MaxRows uint64
}

// Ingest runs the whole pipeline over the file at path: detect the format,
// count rows, validate the column against d, and load a buffer of one entry
// per counted row, capped by MaxRows.  The populated buffer is handed to the
// retrieval engine, which takes ownership of it; the returned Database is
// the engine's opaque handle.
//
// Any structural failure -- unrecognized format, empty or unreadable
// source, schema or range violation -- is returned as an error and no
// database is produced.  Per-row data-quality issues during loading are
// recovered in place and reported as logger warnings only.
func Ingest(logger *zap.Logger, path string, d uint, opts Options) (*pir.Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if d == 0 || d > pirdb.MaxBitWidth {
		return nil, fmt.Errorf("bit width must be in [1, %d]: %d", pirdb.MaxBitWidth, d)
	}
	format := pirdb.DetectFormat(path)
	if format == pirdb.FormatUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	src := Source{Path: path, Format: format, Column: opts.Column, Header: opts.Header}
	n, err := countRows(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySource)
	}
	if opts.MaxRows != 0 && opts.MaxRows < n {
		n = opts.MaxRows
	}
	if err := ValidateColumn(src, d); err != nil {
		return nil, fmt.Errorf("%s: column must contain only values in [0, %d] for d=%d: %w",
			path, pirdb.MaxEntry(d), d, err)
	}
	entries := make([]pirdb.Entry, n)
	if err := LoadBuffer(logger, entries, src, d, opts.MaxRows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("column ingested",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Uint64("rows", n),
		zap.Uint("bits", d))
	return pir.NewDatabase(n, d, entries)
}
