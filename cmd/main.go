package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/foamslides/cmd/foamslides"
	"github.com/dasdy/foamslides/logging"
)

func main() {
	slog.SetDefault(slog.New(logging.New(os.Stderr, slog.LevelInfo)))

	foamslides.Execute()
}
