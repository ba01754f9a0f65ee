package telemetry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerLevels(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	InitLogger(false, "")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))

	InitLogger(true, "")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestInitLoggerFileHandler(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	path := filepath.Join(t.TempDir(), "bench.log")
	InitLogger(true, path)

	slog.Info("hello", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestMultiHandlerFanOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fan.log")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	m := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(f, nil),
		slog.NewJSONHandler(f, nil),
	}}
	logger := slog.New(m)
	logger.Info("twice")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, countLines(string(data)))
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
