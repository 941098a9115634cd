package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")

	l.Info("dropped")
	l.Warn("kept", slog.String("provider", "openai"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "openai", rec["provider"])
}

func TestWailsLogger_Forwards(t *testing.T) {
	var buf bytes.Buffer
	w := NewWailsLogger(New(&buf, "debug", "text"))

	w.Trace("trace is below debug")
	w.Info("window ready")
	w.Warning("slow start")

	out := buf.String()
	assert.NotContains(t, out, "trace is below debug")
	assert.Contains(t, out, "window ready")
	assert.Contains(t, out, "component=wails")
	assert.Contains(t, out, "level=WARN")
}

func TestWailsLevel(t *testing.T) {
	assert.Equal(t, wailslogger.DEBUG, WailsLevel("debug"))
	assert.Equal(t, wailslogger.INFO, WailsLevel("info"))
	assert.Equal(t, wailslogger.WARNING, WailsLevel("warn"))
	assert.Equal(t, wailslogger.ERROR, WailsLevel("error"))
}
