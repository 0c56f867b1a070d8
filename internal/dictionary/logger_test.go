package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "meddict.log")

	l, err := NewLogger(path)
	require.NoError(t, err)

	l.Error("autocomplete", "lookup failed", errors.New("boom"))
	l.Debug("client", "filtered out", nil)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ERROR autocomplete: lookup failed | map[error:boom]")
	assert.NotContains(t, string(data), "filtered out")
}

func TestLoggerMinLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meddict.log")

	l, err := NewLogger(path)
	require.NoError(t, err)

	l.SetMinLevel(LogDebug)
	l.Debug("search", "discarded stale result", map[string]interface{}{"term": "heart"})

	l.SetMinLevel(LogWarning)
	l.Info("search", "lookup started", nil)
	l.Warning("autocomplete", "suggestions unavailable", nil)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG search: discarded stale result | map[term:heart]")
	assert.NotContains(t, string(data), "lookup started")
	assert.Contains(t, string(data), "WARN autocomplete: suggestions unavailable")
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NopLogger()
	l.SetMinLevel(LogDebug)
	l.Info("search", "started", nil)
	assert.NoError(t, l.Close())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want LogLevel
	}{
		{"debug", LogDebug},
		{"", LogInfo},
		{"INFO", LogInfo},
		{" warn ", LogWarning},
		{"warning", LogWarning},
		{"error", LogError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}
