package vector

import (
	"golang.org/x/exp/slices"
)

// String stores text as one byte buffer delimited by offsets.  The value
// in slot i is Bytes[Offsets[i]:Offsets[i+1]].
type String struct {
	Offsets []uint32
	Bytes   []byte
}

var _ Store[string, []byte] = (*String)(nil)

func NewString() *String {
	return &String{Offsets: newOffsets()}
}

func (s *String) Push(item string) {
	s.Copy(&item)
}

func (s *String) Copy(item *string) {
	checkOffset(len(s.Bytes) + len(*item))
	s.Bytes = append(s.Bytes, *item...)
	s.Offsets = appendOffset(s.Offsets, len(s.Bytes))
}

func (s *String) CopySlice(items []string) {
	var n int
	for _, item := range items {
		n += len(item)
	}
	s.Bytes = slices.Grow(s.Bytes, n)
	s.Offsets = slices.Grow(s.Offsets, len(items))
	for k := range items {
		s.Copy(&items[k])
	}
}

func (s *String) Len() int {
	return offsetsLen(s.Offsets)
}

func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

func (s *String) Pop() (string, bool) {
	offs, start, end, ok := popOffset(s.Offsets)
	if !ok {
		return "", false
	}
	if end != len(s.Bytes) {
		invariant("string offsets end at %d but buffer holds %d bytes", end, len(s.Bytes))
	}
	item := string(s.Bytes[start:end])
	s.Offsets = offs
	s.Bytes = s.Bytes[:start]
	return item, true
}

// Index returns the bytes of the string in the given slot.  The result
// aliases the store's buffer and must not be modified.
func (s *String) Index(slot int) []byte {
	start, end := bounds(s.Offsets, slot)
	return s.Bytes[start:end:end]
}

// Value returns a copy of the string in the given slot.
func (s *String) Value(slot int) string {
	return string(s.Index(slot))
}

func (s *String) Clear() {
	s.Offsets = clearOffsets(s.Offsets)
	s.Bytes = s.Bytes[:0]
}

func (s *String) HeapSize() (int, int) {
	ol, oc := offsetsHeapSize(s.Offsets)
	return ol + len(s.Bytes), oc + cap(s.Bytes)
}
