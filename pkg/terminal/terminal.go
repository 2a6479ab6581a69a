package terminal

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// Width returns the width of the terminal attached to stderr, or 80 if
// stderr is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
