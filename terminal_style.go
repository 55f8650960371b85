//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows

package rawterm

import "github.com/mgutz/ansi"

// SetColors writes the escape sequences for the given foreground and background colors
func (t *Terminal) SetColors(fg, bg Color) error {
	return writeCommand(t.w, fg.ForegroundSequence()+bg.BackgroundSequence())
}

// ResetColors writes the escape sequence that resets all attributes
func (t *Terminal) ResetColors() error {
	return writeCommand(t.w, ansi.Reset)
}
