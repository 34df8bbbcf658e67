package ingest

import (
	"github.com/veripir/pirdb"
	"go.uber.org/multierr"
)

// Stats describes a source's column for operator visibility.  Collecting
// stats is read-only and never affects an ingestion outcome.
type Stats struct {
	// Rows is the data-row count, per the same rules as CountRows.
	Rows uint64
	// BitWidth is the configured d and MaxAllowed its maximum
	// representable value.
	BitWidth   uint
	MaxAllowed pirdb.Entry
	// Min and Max are the observed extremes over cells that parsed
	// successfully; unparseable and null cells are skipped, not counted
	// as zero.  Observed is false when no cell parsed.
	Min, Max uint64
	Observed bool
	// StorageBytes is the loaded database size, Rows*BitWidth/8,
	// truncated to whole bytes.
	StorageBytes uint64
}

// CollectStats scans the source and reports its descriptive statistics
// for bit width d.
func CollectStats(src Source, d uint) (_ *Stats, err error) {
	s := &Stats{
		Rows:       CountRows(src),
		BitWidth:   d,
		MaxAllowed: pirdb.MaxEntry(d),
	}
	s.StorageBytes = s.Rows * uint64(d) / 8
	r, c, oerr := src.open()
	if oerr != nil {
		return nil, oerr
	}
	defer func() {
		err = multierr.Append(err, c.Close())
	}()
	for {
		cell, rerr := r.Read()
		if rerr != nil {
			return nil, rerr
		}
		if cell == nil {
			return s, nil
		}
		if cell.Null || cell.Err != nil {
			continue
		}
		if !s.Observed || cell.Value < s.Min {
			s.Min = cell.Value
		}
		if !s.Observed || cell.Value > s.Max {
			s.Max = cell.Value
		}
		s.Observed = true
	}
}
