package plural_test

import (
	"testing"

	"github.com/brimdata/columnar/pkg/plural"
	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	assert.Equal(t, "", plural.Slice([]int{1}, "s"))
	assert.Equal(t, "s", plural.Slice([]int{}, "s"))
	assert.Equal(t, "1 row", plural.Count(1, "row"))
	assert.Equal(t, "0 rows", plural.Count(0, "row"))
	assert.Equal(t, "12 files", plural.Count(12, "file"))
}
