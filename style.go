package rawterm

import (
	"strconv"
	"sync"

	"github.com/mgutz/ansi"
	"github.com/xyproto/env/v2"
)

// Color is one of the basic terminal colors
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Default
	Reset
)

var colorNames = [...]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
	Default: "default",
	Reset:   "reset",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

// Foreground returns the SGR parameter that sets c as the foreground color
func (c Color) Foreground() uint8 {
	switch {
	case c <= White:
		return 30 + uint8(c)
	case c == Default:
		return 39
	}
	return 0
}

// Background returns the SGR parameter that sets c as the background color
func (c Color) Background() uint8 {
	switch {
	case c <= White:
		return 40 + uint8(c)
	case c == Default:
		return 49
	}
	return 0
}

// scache caches the rendered escape sequences
var scache sync.Map

func sgr(code uint8) string {
	if cached, ok := scache.Load(code); ok {
		return cached.(string)
	}
	s := "\033[" + strconv.Itoa(int(code)) + "m"
	scache.Store(code, s)
	return s
}

// ForegroundSequence returns the escape sequence that sets c as the foreground color
func (c Color) ForegroundSequence() string {
	return sgr(c.Foreground())
}

// BackgroundSequence returns the escape sequence that sets c as the background color
func (c Color) BackgroundSequence() string {
	return sgr(c.Background())
}

// NoColor reports whether colored output has been turned off with NO_COLOR
func NoColor() bool {
	return env.Has("NO_COLOR")
}

// Paint returns text in the foreground color c, followed by a reset.
// Default and Reset leave the text as it is, and so does NO_COLOR.
func (c Color) Paint(text string) string {
	if c > White || NoColor() {
		return text
	}
	return ansi.Color(text, colorNames[c])
}
