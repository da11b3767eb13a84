package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// New returns a text logger writing to w at the given level. Passing a
// *slog.LevelVar lets the level change after construction. Every record
// carries a "run" attribute identifying the process invocation.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
