package vector

import (
	"math"

	"github.com/brimdata/columnar/colerr"
)

// Offsets delimit variable-length entries in a backing buffer or nested
// store: entry i spans [offs[i], offs[i+1]).  A well-formed offsets slice
// has one more element than there are entries and begins with 0.

const offsetSize = 4

func newOffsets() []uint32 {
	return []uint32{0}
}

func offsetsLen(offs []uint32) int {
	if len(offs) == 0 {
		return 0
	}
	return len(offs) - 1
}

// checkOffset panics if off cannot be recorded as an offset.  Stores call
// it before appending to their buffers so a failed append leaves them
// unchanged.
func checkOffset(off int) {
	if off > math.MaxUint32 {
		panic(colerr.E(colerr.Invalid, "offset %d overflows uint32", off))
	}
}

func appendOffset(offs []uint32, off int) []uint32 {
	checkOffset(off)
	if len(offs) == 0 {
		offs = newOffsets()
	}
	return append(offs, uint32(off))
}

// popOffset removes the last entry from offs and returns the bounds of
// the entry it delimited.
func popOffset(offs []uint32) ([]uint32, int, int, bool) {
	n := len(offs)
	if n <= 1 {
		return offs, 0, 0, false
	}
	start, end := offs[n-2], offs[n-1]
	if start > end {
		invariant("offsets decrease at slot %d: %d > %d", n-2, start, end)
	}
	return offs[:n-1], int(start), int(end), true
}

func bounds(offs []uint32, slot int) (int, int) {
	checkSlot(slot, offsetsLen(offs))
	return int(offs[slot]), int(offs[slot+1])
}

func clearOffsets(offs []uint32) []uint32 {
	return append(offs[:0], 0)
}

func offsetsHeapSize(offs []uint32) (int, int) {
	return offsetSize * len(offs), offsetSize * cap(offs)
}
