package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	a := assert.New(t)
	a.Equal(slog.LevelDebug, ParseLevel("debug"))
	a.Equal(slog.LevelWarn, ParseLevel("warn"))
	a.Equal(slog.LevelError, ParseLevel("nonsense"))
}

func TestNew(t *testing.T) {
	t.Run("should drop records below the level", func(t *testing.T) {
		a := assert.New(t)
		var out bytes.Buffer
		logger, err := New(Config{LogLevel: slog.LevelWarn, Output: &out})
		a.NoError(err)

		logger.Info("hidden")
		logger.Warn("cannot read backing store", "sink", "file:favs.json")

		a.NotContains(out.String(), "hidden")
		a.Contains(out.String(), `"level":"WARN"`)
		a.Contains(out.String(), `"sink":"file:favs.json"`)
	})

	t.Run("debug mode should lower the level", func(t *testing.T) {
		var out bytes.Buffer
		logger, err := New(Config{DebugMode: true, LogLevel: slog.LevelError, Output: &out})
		assert.NoError(t, err)
		logger.Debug("visible")
		assert.Contains(t, out.String(), "visible")
	})
}
