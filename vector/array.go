package vector

import (
	"golang.org/x/exp/slices"
)

// Array stores variable-length lists of elements of any shape.  The
// elements of all lists are appended to a single nested store, Values,
// and the list in slot i occupies Values slots [Offsets[i], Offsets[i+1]).
type Array[T, V any] struct {
	Offsets []uint32
	Values  Store[T, V]
}

var _ Store[[]int64, ArrayView[int64, int64]] = (*Array[int64, int64])(nil)

func NewArray[T, V any](values Store[T, V]) *Array[T, V] {
	return &Array[T, V]{Offsets: newOffsets(), Values: values}
}

func (a *Array[T, V]) Push(item []T) {
	a.Copy(&item)
}

func (a *Array[T, V]) Copy(item *[]T) {
	checkOffset(a.Values.Len() + len(*item))
	a.Values.CopySlice(*item)
	a.Offsets = appendOffset(a.Offsets, a.Values.Len())
}

func (a *Array[T, V]) CopySlice(items [][]T) {
	a.Offsets = slices.Grow(a.Offsets, len(items))
	for k := range items {
		a.Copy(&items[k])
	}
}

func (a *Array[T, V]) Len() int {
	return offsetsLen(a.Offsets)
}

func (a *Array[T, V]) IsEmpty() bool {
	return a.Len() == 0
}

// Pop reassembles the last list by popping its elements off the tail of
// the nested store.  An empty list comes back as a non-nil empty slice.
func (a *Array[T, V]) Pop() ([]T, bool) {
	offs, start, end, ok := popOffset(a.Offsets)
	if !ok {
		return nil, false
	}
	if n := a.Values.Len(); end != n {
		invariant("array offsets end at %d but values hold %d elements", end, n)
	}
	a.Offsets = offs
	// Elements come off the nested store last first.
	item := make([]T, end-start)
	for k := len(item) - 1; k >= 0; k-- {
		elem, ok := a.Values.Pop()
		if !ok {
			invariant("array values exhausted with %d elements left to pop", k+1)
		}
		item[k] = elem
	}
	return item, true
}

func (a *Array[T, V]) Index(slot int) ArrayView[T, V] {
	start, end := bounds(a.Offsets, slot)
	return ArrayView[T, V]{lower: start, upper: end, values: a.Values}
}

func (a *Array[T, V]) Clear() {
	a.Offsets = clearOffsets(a.Offsets)
	a.Values.Clear()
}

func (a *Array[T, V]) HeapSize() (int, int) {
	ol, oc := offsetsHeapSize(a.Offsets)
	vl, vc := a.Values.HeapSize()
	return ol + vl, oc + vc
}

// ArrayView is the view of one list in an Array.  It does not copy any
// elements; Index addresses the nested store directly.
type ArrayView[T, V any] struct {
	lower  int
	upper  int
	values Store[T, V]
}

func (a ArrayView[T, V]) Len() int {
	return a.upper - a.lower
}

// Index returns a view of the element in position k of the list.
func (a ArrayView[T, V]) Index(k int) V {
	checkSlot(k, a.Len())
	return a.values.Index(a.lower + k)
}

// Bounds returns the range of slots in the nested store covered by the list.
func (a ArrayView[T, V]) Bounds() (int, int) {
	return a.lower, a.upper
}
