package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input     string
		expect    slog.Level
		expectErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		lvl, err := levelFromString(tt.input)
		if tt.expectErr {
			assert.ErrorContains(t, err, "invalid log level")
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expect, lvl)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := newLogger(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug("hidden")
	log.Info("meeting created", "id", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "meeting created", rec["msg"])
	assert.Equal(t, "abc", rec["id"])
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := New(Config{Format: "xml"})
	assert.ErrorContains(t, err, "invalid log format")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	var buf bytes.Buffer
	log, closer, err := newLogger(Config{File: path}, &buf)
	require.NoError(t, err)

	log.Warn("rate limited", "peer", "127.0.0.1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rate limited")
	assert.Contains(t, buf.String(), "rate limited")
}
