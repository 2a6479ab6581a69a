package vector

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Flat stores values with no internal shape, such as numbers and other
// fixed-size scalars, in a single slice.
type Flat[T any] struct {
	Values []T
}

var _ Store[int64, int64] = (*Flat[int64])(nil)

func NewFlat[T any]() *Flat[T] {
	return &Flat[T]{}
}

func (f *Flat[T]) Push(item T) {
	f.Values = append(f.Values, item)
}

func (f *Flat[T]) Copy(item *T) {
	f.Values = append(f.Values, *item)
}

func (f *Flat[T]) CopySlice(items []T) {
	f.Values = append(f.Values, items...)
}

func (f *Flat[T]) Len() int {
	return len(f.Values)
}

func (f *Flat[T]) IsEmpty() bool {
	return len(f.Values) == 0
}

func (f *Flat[T]) Pop() (T, bool) {
	var zero T
	n := len(f.Values)
	if n == 0 {
		return zero, false
	}
	item := f.Values[n-1]
	f.Values[n-1] = zero
	f.Values = f.Values[:n-1]
	return item, true
}

func (f *Flat[T]) Index(slot int) T {
	checkSlot(slot, len(f.Values))
	return f.Values[slot]
}

func (f *Flat[T]) Clear() {
	clear(f.Values)
	f.Values = f.Values[:0]
}

func (f *Flat[T]) HeapSize() (int, int) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return size * len(f.Values), size * cap(f.Values)
}

// Number is the set of element types that Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the values of a flat numeric store in a single pass over
// its contiguous backing slice.
func Sum[T Number](f *Flat[T]) T {
	var sum T
	for _, v := range f.Values {
		sum += v
	}
	return sum
}
