package columnar

import (
	"github.com/brimdata/columnar/vector"
)

// ArrayOf returns the shape of lists of elem.
func ArrayOf[T, V any](elem Shape[T, V]) Shape[[]T, vector.ArrayView[T, V]] {
	return NewShape("["+elem.name+"]", func() vector.Store[[]T, vector.ArrayView[T, V]] {
		return vector.NewArray(elem.New())
	})
}

// Tuple2Of returns the shape of pairs of a and b.
func Tuple2Of[A, AV, B, BV any](a Shape[A, AV], b Shape[B, BV]) Shape[vector.Tuple2[A, B], vector.Tuple2[AV, BV]] {
	name := "(" + a.name + "," + b.name + ")"
	return NewShape(name, func() vector.Store[vector.Tuple2[A, B], vector.Tuple2[AV, BV]] {
		return vector.NewRecord2(a.New(), b.New())
	})
}

// Tuple3Of returns the shape of triples of a, b, and c.
func Tuple3Of[A, AV, B, BV, C, CV any](a Shape[A, AV], b Shape[B, BV], c Shape[C, CV]) Shape[vector.Tuple3[A, B, C], vector.Tuple3[AV, BV, CV]] {
	name := "(" + a.name + "," + b.name + "," + c.name + ")"
	return NewShape(name, func() vector.Store[vector.Tuple3[A, B, C], vector.Tuple3[AV, BV, CV]] {
		return vector.NewRecord3(a.New(), b.New(), c.New())
	})
}

// OptionOf returns the shape of optional values of s.  The tags of its
// stores use the given encoding, or vector.WordTags if none is given.
func OptionOf[T, V any](s Shape[T, V], enc ...vector.TagEncoding) Shape[vector.Option[T], vector.Option[V]] {
	e := encoding(enc)
	return NewShape(s.name+"?", func() vector.Store[vector.Option[T], vector.Option[V]] {
		return vector.NewOptional(s.New(), e)
	})
}

// UnionOf returns the shape of values that are either an l or an r.
func UnionOf[L, LV, R, RV any](l Shape[L, LV], r Shape[R, RV], enc ...vector.TagEncoding) Shape[vector.Either[L, R], vector.Either[LV, RV]] {
	e := encoding(enc)
	name := "(" + l.name + "|" + r.name + ")"
	return NewShape(name, func() vector.Store[vector.Either[L, R], vector.Either[LV, RV]] {
		return vector.NewUnion(l.New(), r.New(), e)
	})
}

func encoding(enc []vector.TagEncoding) vector.TagEncoding {
	if len(enc) == 0 {
		return vector.WordTags
	}
	return enc[0]
}
