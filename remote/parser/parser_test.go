package parser_test

import (
	"testing"

	"github.com/dasdy/foamslides/remote/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseLineTest struct {
	name           string
	line           string
	expectedResult *parser.Command
}

type errorLineTest struct {
	name string
	line string
}

func TestParseLine(t *testing.T) {
	testCases := []parseLineTest{
		{
			"next button",
			`[00:01:12.114,013] <inf> clicker: button: next`,
			&parser.Command{Action: parser.ActionNext},
		},
		{
			"trims escape code at end",
			"[00:01:12.114,013] <inf> clicker: button: prev\x1b[0m",
			&parser.Command{Action: parser.ActionPrev},
		},
		{
			"upper case and trailing comma",
			"button: FIRST, held: false",
			&parser.Command{Action: parser.ActionFirst},
		},
		{
			"last button",
			"button: last",
			&parser.Command{Action: parser.ActionLast},
		},
		{
			"goto",
			"[00:01:12.114,013] <inf> clicker: goto: 12",
			&parser.Command{Action: parser.ActionGoto, Index: 12},
		},
		{
			"no command",
			"[00:01:12.114,013] <inf> clicker: battery: 87",
			nil,
		},
		{
			"empty",
			"",
			nil,
		},
		{
			"key without value",
			"clicker: button:",
			nil,
		},
	}

	for _, item := range testCases {
		t.Run("parses "+item.name, func(t *testing.T) {
			res, err := parser.ParseLine(item.line)

			require.NoError(t, err)

			assert.Equal(t, item.expectedResult, res)
		})
	}

	errorTestCases := []errorLineTest{
		{"unknown button", "button: volume_up"},
		{"goto malformed", "goto: twelve"},
		{"goto negative", "goto: -1"},
	}

	for _, item := range errorTestCases {
		t.Run("does not parse "+item.name, func(t *testing.T) {
			res, err := parser.ParseLine(item.line)

			require.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

var result *parser.Command

func BenchmarkParseLine(b *testing.B) {
	line := "[00:01:12.114,013] <inf> clicker: button: next\x1b[0m"

	var r *parser.Command

	for range b.N {
		r, _ = parser.ParseLine(line)
	}

	result = r
}
