package parser

import (
	"fmt"
	"strconv"
	"strings"
)

type Action string

const (
	ActionNext  Action = "next"
	ActionPrev  Action = "prev"
	ActionFirst Action = "first"
	ActionLast  Action = "last"
	ActionGoto  Action = "goto"
)

// Command is one clicker request. Index is only set for ActionGoto.
type Command struct {
	Action Action
	Index  int
}

// ParseLine finds a "button: <name>" or "goto: <n>" pair in a clicker log
// line. Lines without either return nil and no error.
func ParseLine(line string) (*Command, error) {
	// Firmware logs end with a colour reset code.
	line = strings.ReplaceAll(line, "\x1b[0m", "")
	splits := strings.Fields(line)

	ix := 0
	limit := len(splits) - 1 // We always care about the next token, so stop before it's too late

	for ix < limit {
		curItem := splits[ix]
		nextItem := strings.TrimRight(splits[ix+1], ",")

		switch curItem {
		case "button:":
			switch a := Action(strings.ToLower(nextItem)); a {
			case ActionNext, ActionPrev, ActionFirst, ActionLast:
				return &Command{Action: a}, nil
			default:
				return nil, fmt.Errorf("unknown button: '%s'", nextItem)
			}
		case "goto:":
			index, err := strconv.Atoi(nextItem)
			if err != nil {
				return nil, fmt.Errorf("could not parse goto index: %w", err)
			}

			if index < 0 {
				return nil, fmt.Errorf("negative goto index: %d", index)
			}

			return &Command{Action: ActionGoto, Index: index}, nil
		}

		ix++
	}

	return nil, nil
}
