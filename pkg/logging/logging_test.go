package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestStructuredLoggerAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "foodd", "v1.2.3", slog.LevelInfo)

	logger.Info("server started", "port", 3000)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "server started", rec["msg"])
	assert.Equal(t, "foodd", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.EqualValues(t, 3000, rec["port"])
	assert.NotContains(t, rec, "source")
}

func TestStructuredLoggerDebugHasSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "foodd", "dev", slog.LevelDebug)

	logger.Debug("cache miss")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, "source")
}

func TestStructuredLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "foodd", "dev", slog.LevelWarn)

	logger.Info("ignored")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestSetDefaultStructuredLoggerWithLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	SetDefaultStructuredLoggerWithLevel("food", "dev", "error")
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))
}

func TestNewLogLogger(t *testing.T) {
	l := NewLogLogger(slog.LevelError, false)
	require.NotNil(t, l)
}
