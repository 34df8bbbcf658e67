// Package ingest implements the column ingestion pipeline: row counting,
// bit-width validation, buffer loading, descriptive statistics, and the
// facade that hands a populated buffer to the retrieval engine.
//
// Counting, validation, and loading each perform an independent full scan
// of the source, but all scans go through the same per-format cell reader,
// so every pass agrees on which rows are data rows.
package ingest

import (
	"fmt"
	"io"
	"os"

	"github.com/veripir/pirdb"
	"github.com/veripir/pirdb/cellio"
	"github.com/veripir/pirdb/cellio/csvio"
	"github.com/veripir/pirdb/cellio/parquetio"
)

// Source is a resolved reference to one column of a tabular file.
// It is immutable once built.
type Source struct {
	Path   string
	Format pirdb.Format
	// Column selects the column by name; empty selects the first column.
	Column string
	// Header indicates a delimited-text source starts with a heading
	// line.  Ignored for columnar formats.
	Header bool
}

// open returns a cell reader over the source's column along with the
// closer for the underlying file.
func (s Source) open() (cellio.Reader, io.Closer, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, err
	}
	switch s.Format {
	case pirdb.FormatCSV:
		opts := csvio.ReaderOpts{Header: s.Header, Column: s.Column}
		return csvio.NewReader(f, opts), f, nil
	case pirdb.FormatParquet:
		r, err := parquetio.NewReader(f, s.Column)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return r, f, nil
	}
	f.Close()
	return nil, nil, fmt.Errorf("%s: %w", s.Path, ErrUnknownFormat)
}
