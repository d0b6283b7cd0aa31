package cmdutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", FormatText)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("collected ids", "count", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "count=3")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", FormatJSON)
	require.NoError(t, err)

	logger.Info("filter complete", "observed", 3, "emitted", 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "filter complete", rec["msg"])
	assert.EqualValues(t, 2, rec["emitted"])
}

func TestNewLoggerBadFormat(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "%s failed", "load")
	assert.Equal(t, "error: load failed\n", buf.String())
}
