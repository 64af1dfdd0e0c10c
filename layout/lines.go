package layout

import (
	"strings"
	"unicode/utf8"
)

// splitLines splits on newlines and drops the empty tail left by a trailing
// newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// ReplaceNthLine replaces the 1-based line n of s with repl. An out of range
// n leaves the lines untouched. The result never ends with a newline.
func ReplaceNthLine(s string, n int, repl string) string {
	lines := splitLines(s)
	if n >= 1 && n <= len(lines) {
		lines[n-1] = repl
	}

	return strings.Join(lines, "\n")
}

// BlankLines replaces every listed 1-based line with as many spaces as it
// had characters, so the listing keeps its shape.
func BlankLines(s string, ns ...int) string {
	orig := splitLines(s)
	out := strings.Join(orig, "\n")

	for _, n := range ns {
		if n < 1 || n > len(orig) {
			continue
		}

		out = ReplaceNthLine(out, n, strings.Repeat(" ", utf8.RuneCountInString(orig[n-1])))
	}

	return out
}
