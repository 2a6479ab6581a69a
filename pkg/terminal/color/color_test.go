package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	saved := Enabled
	defer func() { Enabled = saved }()
	Enabled = false
	assert.Equal(t, "ok", Green.Colorize("ok"))
	Enabled = true
	assert.Equal(t, "\033[32mok\033[0m", Green.Colorize("ok"))
	assert.Equal(t, "\033[1m", Bold.String())
}
