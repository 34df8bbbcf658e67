// Package pirdb ingests a single numeric column from a tabular file into a
// dense buffer of bounded-width entries consumable by a private-information-
// retrieval engine.  The root package holds the scalar vocabulary shared by
// the pipeline; the pipeline itself lives in the ingest package.
package pirdb

import "math/bits"

// Entry is one bounded-width unsigned value stored in a destination buffer.
// An entry ingested at bit width d always lies in [0, 2^d-1].
type Entry uint64

// MaxBitWidth is the widest bit width an Entry can hold.
const MaxBitWidth = 64

// MaxEntry returns the maximum entry representable in d bits, 2^d-1.
func MaxEntry(d uint) Entry {
	if d >= MaxBitWidth {
		return ^Entry(0)
	}
	return Entry(1)<<d - 1
}

// MinBitWidth returns the number of bits needed to represent v.
// Zero needs one bit by convention.
func MinBitWidth(v uint64) uint {
	if v == 0 {
		return 1
	}
	return uint(bits.Len64(v))
}
