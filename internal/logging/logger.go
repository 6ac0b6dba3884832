package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global JSON logger. Called before config loads so
// even startup failures come out structured.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
