package convert

import (
	"iter"
	"strings"
)

// Lines yields the lines of s without their "\n" or "\r\n" terminators.
// A trailing newline does not produce an empty final line.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !yield(line) {
				return
			}
		}
	}
}

// Fields splits s on sep and yields each piece with surrounding whitespace
// removed, which makes "1, 2,3" split on "," parse cleanly.
func Fields(s, sep string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for field := range strings.SplitSeq(s, sep) {
			if !yield(strings.TrimSpace(field)) {
				return
			}
		}
	}
}
