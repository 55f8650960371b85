package rawterm

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyproto/env/v2"
)

// setenv sets an environment variable for the duration of the test.
// The env package caches the environment, so the cache is reloaded after
// the change and again after the variable has been restored.
func setenv(t *testing.T, key, value string) {
	t.Helper()
	t.Cleanup(func() { env.Load() })
	t.Setenv(key, value)
	env.Load()
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, time.Second, c.CursorTimeout)
	require.NotNil(t, c.Logger)
}

func TestConfigFromEnv(t *testing.T) {
	setenv(t, "RAWTERM_CURSOR_TIMEOUT_MS", "250")
	assert.Equal(t, 250*time.Millisecond, ConfigFromEnv().CursorTimeout)

	setenv(t, "RAWTERM_CURSOR_TIMEOUT_MS", "-5")
	assert.Equal(t, DefaultCursorTimeout, ConfigFromEnv().CursorTimeout)

	setenv(t, "RAWTERM_CURSOR_TIMEOUT_MS", "soon")
	assert.Equal(t, DefaultCursorTimeout, ConfigFromEnv().CursorTimeout)
}

func TestOptions(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	c := newConfig([]Option{WithCursorTimeout(50 * time.Millisecond), WithLogger(logger)})
	assert.Equal(t, 50*time.Millisecond, c.CursorTimeout)
	assert.Same(t, logger, c.Logger)

	// Options override the environment
	setenv(t, "RAWTERM_CURSOR_TIMEOUT_MS", "250")
	c = newConfig([]Option{WithCursorTimeout(75 * time.Millisecond)})
	assert.Equal(t, 75*time.Millisecond, c.CursorTimeout)

	// Invalid values fall back to the defaults
	c = newConfig([]Option{WithCursorTimeout(0), WithLogger(nil)})
	assert.Equal(t, DefaultCursorTimeout, c.CursorTimeout)
	assert.NotNil(t, c.Logger)
}

func TestTTYPath(t *testing.T) {
	setenv(t, "TMUX_PANE_TTY", "/dev/pts/7")
	setenv(t, "SSH_TTY", "/dev/pts/3")
	assert.Equal(t, "/dev/pts/7", TTYPath())

	setenv(t, "TMUX_PANE_TTY", "")
	assert.Equal(t, "/dev/pts/3", TTYPath())
}
