package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDirWritesLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv(DebugEnv, "")

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitDir(dir)
	require.NoError(t, err)

	slog.Info("radar loaded", "technologies", 35)
	slog.Debug("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "techradar.log"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "radar loaded")
	assert.Contains(t, out, "technologies=35")
	assert.False(t, strings.Contains(out, "hidden at info level"))
}

func TestLevel(t *testing.T) {
	t.Setenv(DebugEnv, "1")
	assert.Equal(t, slog.LevelDebug, Level())

	t.Setenv(DebugEnv, "")
	assert.Equal(t, slog.LevelInfo, Level())
}
