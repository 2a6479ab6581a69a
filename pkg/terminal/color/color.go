// Package color wraps text in ANSI color escapes when writing to a terminal.
package color

import (
	"os"
	"strconv"

	"github.com/brimdata/columnar/pkg/terminal"
)

type Code int

const (
	Reset Code = 0
	Bold  Code = 1
	Red   Code = 31
	Green Code = 32
)

// Enabled is true when standard output is a terminal.
var Enabled = terminal.IsTerminal(os.Stdout)

func (c Code) String() string {
	return "\033[" + strconv.Itoa(int(c)) + "m"
}

// Colorize returns s wrapped in c and a reset, or s itself if color is
// not enabled.
func (c Code) Colorize(s string) string {
	if !Enabled {
		return s
	}
	return c.String() + s + Reset.String()
}
