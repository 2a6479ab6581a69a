package vector_test

import (
	"testing"

	"github.com/brimdata/columnar/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	s := vector.NewString()
	assert.Equal(t, []uint32{0}, s.Offsets)
	s.Push("a")
	s.Push("bc")
	s.Push("")
	assert.Equal(t, []uint32{0, 1, 3, 3}, s.Offsets)
	assert.Equal(t, []byte("abc"), s.Bytes)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []byte("bc"), s.Index(1))
	assert.Equal(t, "a", s.Value(0))
	out, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "", out)
	assert.Equal(t, []uint32{0, 1, 3}, s.Offsets)
	out, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "bc", out)
	assert.Equal(t, []byte("a"), s.Bytes)
}

func TestStringIndexDoesNotAliasAppends(t *testing.T) {
	s := vector.NewString()
	s.CopySlice([]string{"ab", "cd"})
	view := s.Index(0)
	view = append(view, 'x')
	assert.Equal(t, "abx", string(view))
	assert.Equal(t, "cd", s.Value(1))
}

func TestStringClear(t *testing.T) {
	s := vector.NewString()
	s.CopySlice([]string{"hello", "world"})
	_, before := s.HeapSize()
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []uint32{0}, s.Offsets)
	used, after := s.HeapSize()
	assert.Equal(t, 4, used)
	assert.Equal(t, before, after)
	s.Push("again")
	assert.Equal(t, "again", s.Value(0))
}

func TestStringRoundtrip(t *testing.T) {
	roundtrip[string, []byte](t, vector.NewString(), []string{"", "x", "héllo", "\xff\xfe", "tail"})
}

func TestStringHeapSize(t *testing.T) {
	s := vector.NewString()
	s.CopySlice([]string{"ab", "cde"})
	used, allocated := s.HeapSize()
	assert.Equal(t, 4*3+5, used)
	assert.Equal(t, 4*cap(s.Offsets)+cap(s.Bytes), allocated)
}

func TestBytes(t *testing.T) {
	b := vector.NewBytes()
	b.Push([]byte{1, 2})
	b.Push(nil)
	b.Push([]byte{3})
	assert.Equal(t, []uint32{0, 2, 2, 3}, b.Offsets)
	assert.Equal(t, []byte{1, 2}, b.Index(0))
	out, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte{3}, out)
	// The popped value must not share the buffer reused by later appends.
	b.Push([]byte{9})
	assert.Equal(t, []byte{3}, out)
	roundtrip[[]byte, []byte](t, vector.NewBytes(), [][]byte{{1}, {}, {2, 3, 4}})
}

func TestZeroValueString(t *testing.T) {
	var s vector.String
	assert.Equal(t, 0, s.Len())
	_, ok := s.Pop()
	assert.False(t, ok)
	s.Push("z")
	assert.Equal(t, []uint32{0, 1}, s.Offsets)
	assert.Equal(t, "z", s.Value(0))
}
