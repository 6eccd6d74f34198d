package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("builds a logger at the configured level", func(t *testing.T) {
		log, err := New(&Config{
			Level:      "warn",
			Format:     "json",
			Output:     "stdout",
			TimeFormat: "2006-01-02T15:04:05Z07:00",
		})
		require.NoError(t, err)
		require.NoError(t, Sync(log))

		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log, err := New(&Config{Level: "verbose", Format: "json", Output: "stdout", TimeFormat: "15:04:05"})
		require.NoError(t, err)

		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("logs to a file when output is a path", func(t *testing.T) {
		path := t.TempDir() + "/app.log"
		log, err := New(&Config{Level: "info", Format: "json", Output: path, TimeFormat: "15:04:05"})
		require.NoError(t, err)

		log.Info("written to file")
		require.NoError(t, Sync(log))

		assert.FileExists(t, path)
	})
}

func TestLevelFor(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"ERROR":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"":        zapcore.InfoLevel,
		"trace":   zapcore.InfoLevel,
	}
	for input, want := range cases {
		assert.Equal(t, want, levelFor(input), "level %q", input)
	}
}
