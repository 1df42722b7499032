package config

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv(t *testing.T) {
	load := func(t *testing.T, env map[string]string) {
		t.Cleanup(func() {
			loadFromEnv(os.LookupEnv)
		})

		loadFromEnv(func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		})
	}

	t.Run("empty environment", func(t *testing.T) {
		load(t, map[string]string{})

		assert.False(t, SHOULD_COLORIZE)
		assert.Equal(t, termenv.Ascii, COLOR_PROFILE)
		assert.Equal(t, DEFAULT_LOG_LEVEL, LOG_LEVEL)
		assert.Empty(t, INVALID_LOG_LEVEL)
	})

	t.Run("256 colors terminal", func(t *testing.T) {
		load(t, map[string]string{"TERM": "xterm-256color"})

		assert.True(t, TERM_256COLOR_CAPABLE)
		assert.True(t, SHOULD_COLORIZE)
		assert.Equal(t, termenv.ANSI256, COLOR_PROFILE)
	})

	t.Run("truecolor", func(t *testing.T) {
		load(t, map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"})

		assert.True(t, SHOULD_COLORIZE)
		assert.Equal(t, termenv.TrueColor, COLOR_PROFILE)
	})

	t.Run("NO_COLOR wins", func(t *testing.T) {
		load(t, map[string]string{"TERM": "xterm-256color", "FORCE_COLOR": "1", "NO_COLOR": "1"})

		assert.True(t, NO_COLOR)
		assert.False(t, SHOULD_COLORIZE)
		assert.Equal(t, termenv.Ascii, COLOR_PROFILE)
	})

	t.Run("FORCE_COLOR", func(t *testing.T) {
		load(t, map[string]string{"FORCE_COLOR": "true"})
		assert.True(t, SHOULD_COLORIZE)
		assert.Equal(t, termenv.ANSI, COLOR_PROFILE)
	})

	t.Run("FORCE_COLOR=0", func(t *testing.T) {
		load(t, map[string]string{"FORCE_COLOR": "0"})
		assert.False(t, FORCE_COLOR)
		assert.False(t, SHOULD_COLORIZE)
	})

	t.Run("log level", func(t *testing.T) {
		load(t, map[string]string{LOG_LEVEL_ENV_VAR_NAME: "DEBUG"})
		assert.Equal(t, zerolog.DebugLevel, LOG_LEVEL)
	})

	t.Run("invalid log level", func(t *testing.T) {
		load(t, map[string]string{LOG_LEVEL_ENV_VAR_NAME: "loud"})
		assert.Equal(t, DEFAULT_LOG_LEVEL, LOG_LEVEL)
		assert.Equal(t, "loud", INVALID_LOG_LEVEL)
	})
}
