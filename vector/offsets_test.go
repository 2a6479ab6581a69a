package vector

import (
	"math"
	"testing"

	"github.com/brimdata/columnar/colerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOffset(t *testing.T) {
	assert.NotPanics(t, func() { checkOffset(math.MaxUint32) })
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, colerr.Is(err, colerr.Invalid))
	}()
	checkOffset(math.MaxUint32 + 1)
}

// hugeUnit claims to hold as many values as an offset can address.
type hugeUnit struct {
	Unit
	copied bool
}

func (h *hugeUnit) Len() int {
	return math.MaxUint32
}

func (h *hugeUnit) CopySlice([]struct{}) {
	h.copied = true
}

func TestOverflowLeavesArrayUnchanged(t *testing.T) {
	values := &hugeUnit{}
	a := NewArray[struct{}, struct{}](values)
	assert.Panics(t, func() { a.Push([]struct{}{{}}) })
	assert.False(t, values.copied)
	assert.Equal(t, []uint32{0}, a.Offsets)
}
