package loader

import (
	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/internal/event"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Verify checks the store of res against the rows it was loaded from,
// which must have been kept.  It compares a view of every stride'th row
// and then pops every row, leaving the store empty.
func Verify(res *Result, stride int) error {
	n := res.Store.Len()
	if n != len(res.Input) {
		return colerr.E(colerr.Invariant, "store holds %d rows but %d were loaded", n, len(res.Input))
	}
	if stride <= 0 {
		stride = 1
	}
	for k := 0; k < n; k += stride {
		if diff := cmp.Diff(res.Input[k], event.Materialize(res.Store.Index(k)), cmpopts.EquateEmpty()); diff != "" {
			return colerr.E(colerr.Invariant, "row %d: view mismatch (-want +got):\n%s", k, diff)
		}
	}
	for k := n - 1; k >= 0; k-- {
		row, ok := res.Store.Pop()
		if !ok {
			return colerr.E(colerr.Invariant, "row %d: store exhausted", k)
		}
		if diff := cmp.Diff(res.Input[k], row, cmpopts.EquateEmpty()); diff != "" {
			return colerr.E(colerr.Invariant, "row %d: pop mismatch (-want +got):\n%s", k, diff)
		}
	}
	if _, ok := res.Store.Pop(); ok {
		return colerr.E(colerr.Invariant, "store not empty after popping %d rows", n)
	}
	used, _ := res.Store.HeapSize()
	fresh, _ := event.Shape(res.Tags).New().HeapSize()
	if used != fresh {
		return colerr.E(colerr.Invariant, "empty store uses %d bytes, want %d", used, fresh)
	}
	return nil
}
