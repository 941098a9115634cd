package logger

import (
	"context"
	"log/slog"
	"os"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// levelTrace sits below debug; Wails emits very chatty trace output.
const levelTrace = slog.LevelDebug - 4

// WailsLogger forwards the desktop host's log output into slog.
type WailsLogger struct {
	l *slog.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(l *slog.Logger) *WailsLogger {
	if l == nil {
		l = L
	}
	return &WailsLogger{l: l.With(slog.String("component", "wails"))}
}

func (w *WailsLogger) Print(message string)   { w.l.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.l.Log(context.Background(), levelTrace, message) }
func (w *WailsLogger) Debug(message string)   { w.l.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.l.Info(message) }
func (w *WailsLogger) Warning(message string) { w.l.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.l.Error(message) }

func (w *WailsLogger) Fatal(message string) {
	w.l.Error(message, slog.Bool("fatal", true))
	os.Exit(1)
}

// WailsLevel maps a slog level name onto the host's log level.
func WailsLevel(level string) wailslogger.LogLevel {
	switch ParseLevel(level) {
	case slog.LevelDebug:
		return wailslogger.DEBUG
	case slog.LevelWarn:
		return wailslogger.WARNING
	case slog.LevelError:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}
