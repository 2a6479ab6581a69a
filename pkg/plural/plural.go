package plural

import "fmt"

func Slice[S ~[]E, E any](s S, suffix string) string {
	if len(s) == 1 {
		return ""
	}
	return suffix
}

// Count formats n followed by noun, adding an "s" unless n is 1.
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
