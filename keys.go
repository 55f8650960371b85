package rawterm

import (
	"strconv"
	"strings"
)

// Key identifies the kind of key in a KeyCode
type Key uint8

const (
	KeyChar Key = iota
	KeyBackspace
	KeyBackTab
	KeyTab
	KeyEnter
	KeyShift
	KeyControl
	KeyAlt
	KeyCapsLock
	KeyEscape
	KeyEnd
	KeyHome
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyF
)

// KeyModifiers is a bit-set of modifier keys held down during a key event
type KeyModifiers uint8

// Modifiers
const (
	ModNone    KeyModifiers = 0
	ModShift   KeyModifiers = 1 << 0
	ModControl KeyModifiers = 1 << 1
	ModAlt     KeyModifiers = 1 << 2
	ModSuper   KeyModifiers = 1 << 3
	ModHyper   KeyModifiers = 1 << 4
	ModMeta    KeyModifiers = 1 << 5
)

// Has reports whether all modifiers in m are set
func (mods KeyModifiers) Has(m KeyModifiers) bool {
	return mods&m == m
}

var modifierNames = []struct {
	mod  KeyModifiers
	name string
}{
	{ModShift, "S"},
	{ModControl, "C"},
	{ModAlt, "M"},
	{ModSuper, "s"},
	{ModHyper, "H"},
	{ModMeta, "A"},
}

// String returns the modifiers in the emacs style used by the key names, ie. "C-S"
func (mods KeyModifiers) String() string {
	if mods == ModNone {
		return ""
	}
	var parts []string
	for _, mn := range modifierNames {
		if mods.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "-")
}

// KeyCode is a key together with its payload. Rune is only used by KeyChar
// and F only by KeyF, so two KeyCodes can be compared with ==.
type KeyCode struct {
	Key  Key
	Rune rune
	F    uint8
}

// Char returns the KeyCode for a printable character
func Char(r rune) KeyCode {
	return KeyCode{Key: KeyChar, Rune: r}
}

// Function returns the KeyCode for function key Fn
func Function(n uint8) KeyCode {
	return KeyCode{Key: KeyF, F: n}
}

// Code returns the KeyCode for a key that carries no payload
func Code(k Key) KeyCode {
	return KeyCode{Key: k}
}

// Human readable names, for debugging
var keyNames = map[Key]string{
	KeyBackspace:  "⌫",
	KeyBackTab:    "⇤",
	KeyTab:        "⇥",
	KeyEnter:      "⏎",
	KeyShift:      "⇧",
	KeyControl:    "⌃",
	KeyAlt:        "⌥",
	KeyCapsLock:   "⇪",
	KeyEscape:     "⎋",
	KeyEnd:        "⇲",
	KeyHome:       "⇱",
	KeyLeftArrow:  "←",
	KeyRightArrow: "→",
	KeyUpArrow:    "↑",
	KeyDownArrow:  "↓",
}

func (kc KeyCode) String() string {
	switch kc.Key {
	case KeyChar:
		return strconv.QuoteRune(kc.Rune)
	case KeyF:
		return "F" + strconv.Itoa(int(kc.F))
	}
	if s, ok := keyNames[kc.Key]; ok {
		return s
	}
	return "key(" + strconv.Itoa(int(kc.Key)) + ")"
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Code      KeyCode
	Modifiers KeyModifiers
}

func (ke KeyEvent) String() string {
	if ke.Modifiers == ModNone {
		return ke.Code.String()
	}
	return ke.Modifiers.String() + "-" + ke.Code.String()
}
