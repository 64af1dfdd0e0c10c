package layout_test

import (
	"testing"

	"github.com/dasdy/foamslides/layout"
	"github.com/stretchr/testify/assert"
)

func TestReplaceNthLine(t *testing.T) {
	const src = "one\ntwo\nthree\n"

	tests := []struct {
		name string
		n    int
		repl string
		want string
	}{
		{"first line", 1, "1", "1\ntwo\nthree"},
		{"last line", 3, "3", "one\ntwo\n3"},
		{"zero is out of range", 0, "x", "one\ntwo\nthree"},
		{"past the end", 4, "x", "one\ntwo\nthree"},
		{"negative", -1, "x", "one\ntwo\nthree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.ReplaceNthLine(src, tt.n, tt.repl))
		})
	}
}

func TestReplaceNthLine_Empty(t *testing.T) {
	assert.Equal(t, "", layout.ReplaceNthLine("", 1, "x"))
}

func TestBlankLines(t *testing.T) {
	const src = "class A {\n    int x;\n    // note\n};\n"

	tests := []struct {
		name  string
		lines []int
		want  string
	}{
		{"nothing", nil, "class A {\n    int x;\n    // note\n};"},
		{"one line", []int{3}, "class A {\n    int x;\n           \n};"},
		{"several lines", []int{2, 4}, "class A {\n          \n    // note\n  "},
		{"out of range ignored", []int{9}, "class A {\n    int x;\n    // note\n};"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.BlankLines(src, tt.lines...))
		})
	}
}

func TestBlankLines_CountsCharacters(t *testing.T) {
	assert.Equal(t, "   \nb", layout.BlankLines("a•c\nb", 1))
}
