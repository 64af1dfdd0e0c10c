// Package remote turns presenter clicker output into navigation.
package remote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dasdy/foamslides/remote/parser"
)

type Navigator interface {
	Next() int
	Prev() int
	First() int
	Last() int
	Goto(index int) error
}

// Dispatch applies cmd to nav.
func Dispatch(nav Navigator, cmd *parser.Command) error {
	switch cmd.Action {
	case parser.ActionNext:
		nav.Next()
	case parser.ActionPrev:
		nav.Prev()
	case parser.ActionFirst:
		nav.First()
	case parser.ActionLast:
		nav.Last()
	case parser.ActionGoto:
		return nav.Goto(cmd.Index)
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}

	return nil
}

// Loop dispatches every command found in lines until lines is closed or ctx
// is done. Bad lines are logged and skipped.
func Loop(ctx context.Context, lines <-chan string, nav Navigator) {
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				slog.Info("Clicker input closed, bailing out")

				return
			}

			cmd, err := parser.ParseLine(line)
			if err != nil {
				slog.Warn("Could not parse clicker line", "line", line, "error", err)

				continue
			}

			if cmd == nil {
				continue
			}

			slog.Debug("Clicker command", "action", cmd.Action, "index", cmd.Index)

			if err := Dispatch(nav, cmd); err != nil {
				slog.Warn("Could not apply clicker command", "action", cmd.Action, "error", err)
			}
		case <-ctx.Done():
			slog.Info("Context done, stopping clicker loop")

			return
		}
	}
}
