package columnar_test

import (
	"testing"
	"time"

	"github.com/brimdata/columnar"
	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/vector"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestShapeNames(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{columnar.ArrayOf(columnar.Int64).Name(), "[int64]"},
		{columnar.Tuple2Of(columnar.Int64, columnar.String).Name(), "(int64,string)"},
		{columnar.Tuple3Of(columnar.Bool, columnar.Bytes, columnar.Unit).Name(), "(bool,bytes,unit)"},
		{columnar.OptionOf(columnar.Float64).Name(), "float64?"},
		{columnar.UnionOf(columnar.Int64, columnar.String).Name(), "(int64|string)"},
		{columnar.ArrayOf(columnar.OptionOf(columnar.UnionOf(columnar.Duration, columnar.KSUID))).String(), "[(duration|ksuid)?]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, c.name)
	}
}

func TestArrayOfTuplesDerivesNestedStores(t *testing.T) {
	shape := columnar.ArrayOf(columnar.Tuple2Of(columnar.Int64, columnar.String))
	store := shape.New()
	array, ok := store.(*vector.Array[vector.Tuple2[int64, string], vector.Tuple2[int64, []byte]])
	require.True(t, ok, "unexpected store type %T", store)
	record, ok := array.Values.(*vector.Record2[int64, int64, string, []byte])
	require.True(t, ok, "unexpected values type %T", array.Values)
	_, ok = record.First.(*vector.Flat[int64])
	assert.True(t, ok)
	_, ok = record.Second.(*vector.String)
	assert.True(t, ok)

	store.Push([]vector.Tuple2[int64, string]{{First: 1, Second: "a"}, {First: 2, Second: "b"}})
	view := store.Index(0)
	assert.Equal(t, []byte("b"), view.Index(1).Second)
}

func TestShapeNewIsFresh(t *testing.T) {
	shape := columnar.ArrayOf(columnar.String)
	a, b := shape.New(), shape.New()
	a.Push([]string{"x"})
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestColumns(t *testing.T) {
	items := []vector.Option[time.Duration]{
		vector.Some(time.Second),
		vector.None[time.Duration](),
	}
	store := columnar.OptionOf(columnar.Duration, vector.BitmapTags).Columns(items)
	require.Equal(t, 2, store.Len())
	opt, ok := store.(*vector.Optional[time.Duration, time.Duration])
	require.True(t, ok)
	_, ok = opt.Tags.(*vector.DenseTags)
	assert.True(t, ok)
	assert.Equal(t, vector.Some(time.Second), store.Index(0))
}

func TestPrimitiveShapes(t *testing.T) {
	ids := columnar.KSUID.New()
	id := ksuid.New()
	ids.Push(id)
	assert.Equal(t, id, ids.Index(0))
	used, _ := ids.HeapSize()
	assert.Equal(t, 20, used)

	halves := columnar.Float16.New()
	halves.Push(float16.Fromfloat32(1.5))
	assert.Equal(t, float32(1.5), halves.Index(0).Float32())
	used, _ = halves.HeapSize()
	assert.Equal(t, 2, used)

	units := columnar.Unit.Columns(make([]struct{}, 10))
	assert.Equal(t, 10, units.Len())
}

func TestUnionShapeRoundtrip(t *testing.T) {
	shape := columnar.UnionOf(columnar.Int64, columnar.ArrayOf(columnar.String))
	items := []vector.Either[int64, []string]{
		vector.Right[int64]([]string{"a", "b"}),
		vector.Left[int64, []string](3),
		vector.Right[int64]([]string{}),
	}
	store := shape.Columns(items)
	for k := len(items) - 1; k >= 0; k-- {
		out, ok := store.Pop()
		require.True(t, ok)
		assert.Equal(t, items[k], out)
	}
}

func TestRegistry(t *testing.T) {
	r := columnar.NewRegistry()
	require.NoError(t, columnar.Register(r, columnar.Int64))
	err := columnar.Register(r, columnar.Int64)
	assert.True(t, colerr.Is(err, colerr.Exists))
	err = columnar.Register(r, columnar.FlatOf[int32]("int64"))
	assert.True(t, colerr.Is(err, colerr.Exists))

	s, err := columnar.Lookup[int64, int64](r)
	require.NoError(t, err)
	assert.Equal(t, "int64", s.Name())

	_, err = columnar.Lookup[string, []byte](r)
	assert.True(t, colerr.Is(err, colerr.NotFound))

	pairs := columnar.Tuple2Of(columnar.Int64, columnar.String)
	require.NoError(t, columnar.Register(r, pairs))
	_, err = columnar.Lookup[vector.Tuple2[int64, string], string](r)
	assert.True(t, colerr.Is(err, colerr.Invalid))

	store, err := columnar.Columns[vector.Tuple2[int64, string], vector.Tuple2[int64, []byte]](r,
		[]vector.Tuple2[int64, string]{{First: 1, Second: "a"}})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []string{"(int64,string)", "int64"}, r.Names())
}

func TestDefaultRegistry(t *testing.T) {
	s, err := columnar.Lookup[string, []byte](columnar.Default)
	require.NoError(t, err)
	assert.Equal(t, "string", s.Name())
	_, err = columnar.Lookup[ksuid.KSUID, ksuid.KSUID](columnar.Default)
	assert.NoError(t, err)
	assert.Contains(t, columnar.Default.Names(), "float16")
}
