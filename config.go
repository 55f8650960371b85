package rawterm

import (
	"log/slog"
	"os"
	"time"

	"github.com/xyproto/env/v2"
)

// DefaultCursorTimeout is how long CursorPosition waits for the terminal to reply
const DefaultCursorTimeout = time.Second

// Config holds the settings of a Terminal
type Config struct {
	// CursorTimeout is the total time budget of a cursor position query
	CursorTimeout time.Duration
	// Logger receives debug output. Nothing is printed to the terminal.
	Logger *slog.Logger
}

// Option modifies a Config
type Option func(*Config)

// WithCursorTimeout sets the time budget of a cursor position query
func WithCursorTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.CursorTimeout = d
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		CursorTimeout: DefaultCursorTimeout,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// ConfigFromEnv returns the default configuration, with the cursor query
// budget taken from RAWTERM_CURSOR_TIMEOUT_MS if it is set to a positive value
func ConfigFromEnv() Config {
	c := DefaultConfig()
	if ms := env.Int("RAWTERM_CURSOR_TIMEOUT_MS", 0); ms > 0 {
		c.CursorTimeout = time.Duration(ms) * time.Millisecond
	}
	return c
}

func newConfig(opts []Option) Config {
	c := ConfigFromEnv()
	for _, opt := range opts {
		opt(&c)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.CursorTimeout <= 0 {
		c.CursorTimeout = DefaultCursorTimeout
	}
	return c
}

// TTYPath returns the path of the terminal device to open
func TTYPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}

	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}

	// Default to /dev/tty
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}

	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}
