package vector_test

import (
	"testing"

	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePanicKind(t *testing.T, kind colerr.Kind, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected panic with an error, got %v", r)
		require.True(t, colerr.Is(err, kind), "unexpected panic: %v", err)
	}()
	f()
}

// roundtrip checks that copying and then popping each item restores
// the store's length and active heap size.
func roundtrip[T, V any](t *testing.T, s vector.Store[T, V], items []T) {
	t.Helper()
	for _, item := range items {
		n := s.Len()
		used, _ := s.HeapSize()
		s.Copy(&item)
		require.Equal(t, n+1, s.Len())
		out, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, item, out)
		require.Equal(t, n, s.Len())
		after, _ := s.HeapSize()
		require.Equal(t, used, after)
		// Leave the item behind so later items see a non-empty store.
		s.Push(item)
	}
	require.Len(t, items, s.Len())
	for k := len(items) - 1; k >= 0; k-- {
		out, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, items[k], out)
	}
	_, ok := s.Pop()
	require.False(t, ok)
	require.True(t, s.IsEmpty())
}

func TestLastAndAt(t *testing.T) {
	s := vector.NewFlat[int64]()
	_, ok := vector.Last[int64, int64](s)
	assert.False(t, ok)
	s.CopySlice([]int64{4, 5, 6})
	v, ok := vector.Last[int64, int64](s)
	require.True(t, ok)
	assert.Equal(t, int64(6), v)
	v, err := vector.At[int64, int64](s, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	_, err = vector.At[int64, int64](s, 3)
	assert.True(t, colerr.Is(err, colerr.OutOfRange))
	_, err = vector.At[int64, int64](s, -1)
	assert.True(t, colerr.Is(err, colerr.OutOfRange))
}

func TestIndexOutOfRange(t *testing.T) {
	cases := map[string]func(){
		"flat":   func() { vector.NewFlat[int]().Index(0) },
		"unit":   func() { vector.NewUnit().Index(0) },
		"string": func() { vector.NewString().Index(0) },
		"bytes":  func() { vector.NewBytes().Index(-1) },
		"array":  func() { vector.NewArray[int, int](vector.NewFlat[int]()).Index(0) },
		"record2": func() {
			vector.NewRecord2[int, int, int, int](vector.NewFlat[int](), vector.NewFlat[int]()).Index(0)
		},
		"optional": func() {
			vector.NewOptional[int, int](vector.NewFlat[int](), vector.WordTags).Index(0)
		},
		"union": func() {
			vector.NewUnion[int, int, int, int](vector.NewFlat[int](), vector.NewFlat[int](), vector.BitmapTags).Index(0)
		},
		"array view": func() {
			a := vector.NewArray[int, int](vector.NewFlat[int]())
			a.Push([]int{1, 2})
			a.Push([]int{3})
			a.Index(0).Index(2)
		},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			requirePanicKind(t, colerr.OutOfRange, f)
		})
	}
}
