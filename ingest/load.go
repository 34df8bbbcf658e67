package ingest

import (
	"github.com/veripir/pirdb"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LoadBuffer populates dst from the source's column, one entry per data
// row, storing at most min(len(dst), maxRows) entries when maxRows is
// nonzero.  Unlike ValidateColumn, loading recovers from bad cells in
// place: an empty or null cell loads as zero, an unparseable or negative
// cell loads as zero with a warning, and a value above 2^d-1 is clamped
// to 2^d-1 with a warning.  In-range values are reduced modulo 2^d
// unconditionally.  A source with fewer rows than the requested limit
// leaves the remaining entries zero and warns; stopping at a maxRows cap
// does not warn.  Only an unopenable source is an error.
func LoadBuffer(logger *zap.Logger, dst []pirdb.Entry, src Source, d uint, maxRows uint64) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r, c, oerr := src.open()
	if oerr != nil {
		return oerr
	}
	defer func() {
		err = multierr.Append(err, c.Close())
	}()
	limit := uint64(len(dst))
	if maxRows != 0 && maxRows < limit {
		limit = maxRows
	}
	max := pirdb.MaxEntry(d)
	var loaded uint64
	for loaded < limit {
		cell, rerr := r.Read()
		if rerr != nil {
			return rerr
		}
		if cell == nil {
			break
		}
		switch {
		case cell.Null:
			dst[loaded] = 0
		case cell.Err != nil:
			logger.Warn("cell loaded as zero",
				zap.Uint64("row", cell.Row),
				zap.String("text", cell.Text),
				zap.Error(cell.Err))
			dst[loaded] = 0
		case pirdb.Entry(cell.Value) > max:
			logger.Warn("value clamped to maximum",
				zap.Uint64("row", cell.Row),
				zap.String("text", cell.Text),
				zap.Uint64("max", uint64(max)))
			dst[loaded] = max
		default:
			// The bound check above makes the reduction a no-op,
			// but it is the stored invariant.
			dst[loaded] = pirdb.Entry(cell.Value) & max
		}
		loaded++
	}
	if loaded < limit {
		logger.Warn("source ended before buffer was filled",
			zap.Uint64("loaded", loaded),
			zap.Uint64("expected", limit))
	}
	return nil
}
