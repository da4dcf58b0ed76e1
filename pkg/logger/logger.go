package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init installs the JSON logger on stdout as the slog default. debug lowers the level to Debug.
func Init(debug bool) *slog.Logger {
	log := New(os.Stdout, debug)
	slog.SetDefault(log)
	return log
}

// New builds a JSON logger writing to w
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
