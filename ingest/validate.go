package ingest

import (
	"errors"
	"fmt"

	"github.com/veripir/pirdb"
	"go.uber.org/multierr"
)

// ErrTooLarge indicates a value above the maximum for the configured
// bit width.
var ErrTooLarge = errors.New("value too large")

// A ValueError reports the first cell that cannot be stored at the
// configured bit width.
type ValueError struct {
	// Row is the 1-based data-row index of the offending cell.
	Row uint64
	// Text is the raw cell text.
	Text string
	// D and Max describe the legal range [0, Max] for bit width D.
	D   uint
	Max pirdb.Entry
	// Err is the underlying cause: ErrTooLarge, cellio.ErrNotInteger,
	// or cellio.ErrNegative.
	Err error
}

func (e *ValueError) Error() string {
	if errors.Is(e.Err, ErrTooLarge) {
		return fmt.Sprintf("row %d: value %s exceeds %d, the maximum for d=%d", e.Row, e.Text, e.Max, e.D)
	}
	return fmt.Sprintf("row %d: %q: %s", e.Row, e.Text, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// ValidateColumn confirms that every present value in the source's column
// fits in d bits.  The scan is read-only and short-circuits on the first
// violation, returned as a *ValueError; empty and null cells are valid
// since they later load as zero.  A nil return means the source may be
// loaded without clamping or substitution.
func ValidateColumn(src Source, d uint) (err error) {
	r, c, oerr := src.open()
	if oerr != nil {
		return oerr
	}
	defer func() {
		err = multierr.Append(err, c.Close())
	}()
	max := pirdb.MaxEntry(d)
	for {
		cell, rerr := r.Read()
		if rerr != nil {
			return rerr
		}
		if cell == nil {
			return nil
		}
		if cell.Err != nil {
			return &ValueError{Row: cell.Row, Text: cell.Text, D: d, Max: max, Err: cell.Err}
		}
		if !cell.Null && pirdb.Entry(cell.Value) > max {
			return &ValueError{Row: cell.Row, Text: cell.Text, D: d, Max: max, Err: ErrTooLarge}
		}
	}
}
