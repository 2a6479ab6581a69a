// Package vector lays out sequences of Go values in columns.
//
// A Store is a stand-in for a []T whose elements are broken apart into
// contiguous buffers of like-typed components, recursively, according to
// the shape of T: flat slices for scalars, offsets plus a byte buffer for
// text, offsets plus a nested store for lists, one store per field for
// tuples, and a tag array plus per-variant stores for optional values and
// unions.
//
// Values are appended with Push, Copy, or CopySlice and removed from the
// tail with Pop, which reassembles the original value from its columns.
// Since an element generally does not exist in memory as a T, Index
// returns a view of type V in its place: the element itself for flat
// stores, a subslice for text, an ArrayView for lists, and tuples,
// options, or unions of views for the composite stores.  A view is valid
// only until the next mutation of its store.
//
// Index panics with a *colerr.Error of kind colerr.OutOfRange for any
// slot outside [0, Len()), at every level of nesting.  Stores panic with
// kind colerr.Invariant when their parallel structures disagree, which
// can only happen when the store has been modified outside of this API.
//
// Stores are not safe for concurrent use.
package vector

import (
	"github.com/brimdata/columnar/colerr"
)

type Store[T, V any] interface {
	// Push appends an item owned by the caller.  The store may retain
	// the item's memory.
	Push(T)
	// Copy appends a copy of the referenced item.  The store does not
	// retain any memory reachable from the item.
	Copy(*T)
	// CopySlice is equivalent to calling Copy on each item in order.
	CopySlice([]T)
	Len() int
	IsEmpty() bool
	// Pop removes and returns the most recently appended item.  The
	// boolean result is false when the store is empty.  Stores of
	// slices do not distinguish nil from empty: a zero-length entry
	// comes back as a non-nil empty slice.
	Pop() (T, bool)
	// Index returns a view of the item in the given slot.
	Index(int) V
	// Clear removes all items but retains allocations.
	Clear()
	// HeapSize returns the active and allocated heap sizes in bytes
	// of the memory owned by the store, not including the store itself.
	HeapSize() (int, int)
}

// Last returns a view of the most recently appended item of s.
func Last[T, V any](s Store[T, V]) (V, bool) {
	if s.IsEmpty() {
		var zero V
		return zero, false
	}
	return s.Index(s.Len() - 1), true
}

// At is like s.Index but returns an OutOfRange error instead of panicking.
func At[T, V any](s Store[T, V], slot int) (V, error) {
	if n := s.Len(); slot < 0 || slot >= n {
		var zero V
		return zero, colerr.ErrOutOfRange(slot, n)
	}
	return s.Index(slot), nil
}

func checkSlot(slot, n int) {
	if slot < 0 || slot >= n {
		panic(colerr.ErrOutOfRange(slot, n))
	}
}

func invariant(format string, args ...interface{}) {
	panic(colerr.ErrInvariant(format, args...))
}
