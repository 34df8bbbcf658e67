// Package pir is the boundary to the private-information-retrieval engine.
// A Database is the opaque handle the ingestion pipeline transfers its
// buffer to; the homomorphic encoding and query protocol behind it are an
// external concern and are not implemented in this repository.
package pir

import (
	"fmt"

	"github.com/veripir/pirdb"
)

// Database owns a dense buffer of n entries, each representable in d bits.
type Database struct {
	n       uint64
	d       uint
	entries []pirdb.Entry
}

// NewDatabase is the engine's construction entry point.  It takes
// ownership of entries, which must hold exactly n values, each strictly
// less than 2^d; callers must not retain or mutate the slice afterward.
func NewDatabase(n uint64, d uint, entries []pirdb.Entry) (*Database, error) {
	if d == 0 || d > pirdb.MaxBitWidth {
		return nil, fmt.Errorf("bit width out of range: %d", d)
	}
	if n == 0 {
		return nil, fmt.Errorf("database cannot be empty")
	}
	if uint64(len(entries)) != n {
		return nil, fmt.Errorf("buffer holds %d entries, want %d", len(entries), n)
	}
	max := pirdb.MaxEntry(d)
	for i, v := range entries {
		if v > max {
			return nil, fmt.Errorf("entry %d out of range: %d > %d", i, v, max)
		}
	}
	return &Database{n: n, d: d, entries: entries}, nil
}

// Len returns the number of entries.
func (db *Database) Len() uint64 { return db.n }

// BitWidth returns the per-entry bit width.
func (db *Database) BitWidth() uint { return db.d }

// Size returns the logical database size in bytes, n*d/8 truncated.
func (db *Database) Size() uint64 { return db.n * uint64(db.d) / 8 }

// At returns the entry at index i.
func (db *Database) At(i uint64) (pirdb.Entry, error) {
	if i >= db.n {
		return 0, fmt.Errorf("index %d out of bounds (max: %d)", i, db.n-1)
	}
	return db.entries[i], nil
}
