// Package logger sets up structured logging for Synapse.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// L is the process logger; Init replaces it.
var L = slog.Default()

// New builds a logger writing to w at the given level ("debug", "info",
// "warn", "error") in the given format ("text" or "json").
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init installs a new process logger and makes it the slog default.
func Init(w io.Writer, level, format string) *slog.Logger {
	L = New(w, level, format)
	slog.SetDefault(L)
	return L
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
