package rawterm

import "fmt"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventFocusGained
	EventFocusLost
	EventCursor       // Cursor position report
	EventUnrecognized // Control sequence with a terminator that was not understood
	EventOutOfRange   // Console key code outside of the known range
)

// Event is one decoded input event. Key is only set for EventKey, and
// Row and Column (1-based, as reported by the terminal) only for EventCursor.
type Event struct {
	Type   EventType
	Key    KeyEvent
	Row    uint16
	Column uint16
}

// KeyPress returns a key event without modifiers
func KeyPress(code KeyCode) Event {
	return Event{Type: EventKey, Key: KeyEvent{Code: code}}
}

// ModifiedKeyPress returns a key event with the given modifiers
func ModifiedKeyPress(code KeyCode, mods KeyModifiers) Event {
	return Event{Type: EventKey, Key: KeyEvent{Code: code, Modifiers: mods}}
}

// CursorReport returns a cursor position event
func CursorReport(row, column uint16) Event {
	return Event{Type: EventCursor, Row: row, Column: column}
}

var unrecognized = Event{Type: EventUnrecognized}

// Pressed reports whether this is a key event for the given code, regardless of modifiers
func (e Event) Pressed(code KeyCode) bool {
	return e.Type == EventKey && e.Key.Code == code
}

// PressedModified reports whether this is exactly the given key event, modifiers included
func (e Event) PressedModified(ke KeyEvent) bool {
	return e.Type == EventKey && e.Key == ke
}

func (e Event) String() string {
	switch e.Type {
	case EventKey:
		return "Key(" + e.Key.String() + ")"
	case EventFocusGained:
		return "FocusGained"
	case EventFocusLost:
		return "FocusLost"
	case EventCursor:
		return fmt.Sprintf("Cursor(%d, %d)", e.Row, e.Column)
	case EventUnrecognized:
		return "UnrecognizedControlSequence"
	case EventOutOfRange:
		return "OutOfRange"
	}
	return fmt.Sprintf("Event(%d)", e.Type)
}
