package columnar

import (
	"time"

	"github.com/brimdata/columnar/vector"
	"github.com/segmentio/ksuid"
	"github.com/x448/float16"
)

// FlatOf returns a shape that stores values of T, which should have no
// internal shape worth splitting into columns, in a vector.Flat.
func FlatOf[T any](name string) Shape[T, T] {
	return NewShape(name, func() vector.Store[T, T] {
		return vector.NewFlat[T]()
	})
}

var (
	Bool     = FlatOf[bool]("bool")
	Int8     = FlatOf[int8]("int8")
	Int16    = FlatOf[int16]("int16")
	Int32    = FlatOf[int32]("int32")
	Int64    = FlatOf[int64]("int64")
	Int      = FlatOf[int]("int")
	Uint8    = FlatOf[uint8]("uint8")
	Uint16   = FlatOf[uint16]("uint16")
	Uint32   = FlatOf[uint32]("uint32")
	Uint64   = FlatOf[uint64]("uint64")
	Uint     = FlatOf[uint]("uint")
	Float16  = FlatOf[float16.Float16]("float16")
	Float32  = FlatOf[float32]("float32")
	Float64  = FlatOf[float64]("float64")
	Rune     = FlatOf[rune]("rune")
	Duration = FlatOf[time.Duration]("duration")
	KSUID    = FlatOf[ksuid.KSUID]("ksuid")

	Unit = NewShape("unit", func() vector.Store[struct{}, struct{}] {
		return vector.NewUnit()
	})
	String = NewShape("string", func() vector.Store[string, []byte] {
		return vector.NewString()
	})
	Bytes = NewShape("bytes", func() vector.Store[[]byte, []byte] {
		return vector.NewBytes()
	})
)
