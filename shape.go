// Package columnar maps Go value types to the column stores that hold
// them.
//
// A Shape pairs a value type T with the construction of its preferred
// vector.Store, whose Index returns views of type V.  Shapes for
// primitive types are predeclared, and shapes for lists, tuples, optional
// values, and unions are composed from the shapes of their parts, so the
// store for a nested type is derived entirely from its shape:
//
//	events := columnar.ArrayOf(columnar.Tuple2Of(columnar.Int64, columnar.String))
//	store := events.New() // an Array over a Record2 of Flat and String
//
// Adding an encoding for a new type is a matter of declaring a Shape for
// it, optionally registering it in a Registry.
package columnar

import (
	"github.com/brimdata/columnar/vector"
)

type Shape[T, V any] struct {
	name string
	new  func() vector.Store[T, V]
}

// NewShape returns a shape whose stores are constructed by calling new.
func NewShape[T, V any](name string, new func() vector.Store[T, V]) Shape[T, V] {
	return Shape[T, V]{name: name, new: new}
}

func (s Shape[T, V]) Name() string {
	return s.name
}

func (s Shape[T, V]) String() string {
	return s.name
}

// New returns an empty store for the shape.
func (s Shape[T, V]) New() vector.Store[T, V] {
	return s.new()
}

// Columns returns a store holding items in their original order.
func (s Shape[T, V]) Columns(items []T) vector.Store[T, V] {
	store := s.new()
	for _, item := range items {
		store.Push(item)
	}
	return store
}
