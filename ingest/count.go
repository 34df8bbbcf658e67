package ingest

import "github.com/veripir/pirdb/cellio"

// CountRows scans the source once and reports its number of data rows.
// For delimited text that is the number of lines holding at least one
// non-whitespace rune after the optional header; for columnar formats the
// count comes from file metadata.  An unreadable or malformed source
// counts as zero rows, which callers must treat as "no data".
// Idempotent.
func CountRows(src Source) uint64 {
	n, err := countRows(src)
	if err != nil {
		return 0
	}
	return n
}

// countRows is CountRows with the open and scan errors intact, so the
// ingestion facade can distinguish a schema or open failure from a source
// that is merely empty.
func countRows(src Source) (uint64, error) {
	r, c, err := src.open()
	if err != nil {
		return 0, err
	}
	defer c.Close()
	if rc, ok := r.(cellio.RowCounter); ok {
		return rc.NumRows(), nil
	}
	var n uint64
	for {
		cell, err := r.Read()
		if err != nil {
			return 0, err
		}
		if cell == nil {
			return n, nil
		}
		n++
	}
}
