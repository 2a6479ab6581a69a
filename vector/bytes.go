package vector

import (
	"golang.org/x/exp/slices"
)

// Bytes stores byte slices the same way String stores text.
type Bytes struct {
	Offsets []uint32
	Bytes   []byte
}

var _ Store[[]byte, []byte] = (*Bytes)(nil)

func NewBytes() *Bytes {
	return &Bytes{Offsets: newOffsets()}
}

func (b *Bytes) Push(item []byte) {
	b.Copy(&item)
}

func (b *Bytes) Copy(item *[]byte) {
	checkOffset(len(b.Bytes) + len(*item))
	b.Bytes = append(b.Bytes, *item...)
	b.Offsets = appendOffset(b.Offsets, len(b.Bytes))
}

func (b *Bytes) CopySlice(items [][]byte) {
	var n int
	for _, item := range items {
		n += len(item)
	}
	b.Bytes = slices.Grow(b.Bytes, n)
	b.Offsets = slices.Grow(b.Offsets, len(items))
	for k := range items {
		b.Copy(&items[k])
	}
}

func (b *Bytes) Len() int {
	return offsetsLen(b.Offsets)
}

func (b *Bytes) IsEmpty() bool {
	return b.Len() == 0
}

// Pop returns a newly allocated copy of the last value since the region
// of the buffer it occupied is reused by later appends.
func (b *Bytes) Pop() ([]byte, bool) {
	offs, start, end, ok := popOffset(b.Offsets)
	if !ok {
		return nil, false
	}
	if end != len(b.Bytes) {
		invariant("bytes offsets end at %d but buffer holds %d bytes", end, len(b.Bytes))
	}
	item := slices.Clone(b.Bytes[start:end])
	if item == nil {
		item = []byte{}
	}
	b.Offsets = offs
	b.Bytes = b.Bytes[:start]
	return item, true
}

func (b *Bytes) Index(slot int) []byte {
	start, end := bounds(b.Offsets, slot)
	return b.Bytes[start:end:end]
}

func (b *Bytes) Clear() {
	b.Offsets = clearOffsets(b.Offsets)
	b.Bytes = b.Bytes[:0]
}

func (b *Bytes) HeapSize() (int, int) {
	ol, oc := offsetsHeapSize(b.Offsets)
	return ol + len(b.Bytes), oc + cap(b.Bytes)
}
