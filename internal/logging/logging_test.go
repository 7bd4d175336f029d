package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		l := New(&bytes.Buffer{}, tt.level)
		if l.GetLevel() != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.level, l.GetLevel(), tt.want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "score", 10)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, Prefix)
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vaders.log")

	l, closer, err := Open(path, "debug")
	require.NoError(t, err)
	l.Debug("first", "wave", 1)
	require.NoError(t, closer.Close())

	l, closer, err = Open(path, "debug")
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "wave=1")
	require.Contains(t, lines[1], "second")
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	l, closer, err := Open("", "info")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("nowhere")
	require.NoError(t, closer.Close())
}
