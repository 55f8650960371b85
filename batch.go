package rawterm

import (
	"iter"
	"slices"
)

// EventBatch holds the events decoded from one read, in arrival order.
// A batch is never modified after it has been returned.
type EventBatch struct {
	events []Event
}

// NewEventBatch returns a batch holding a copy of the given events
func NewEventBatch(events ...Event) EventBatch {
	return EventBatch{events: slices.Clone(events)}
}

// Len returns the number of events in the batch
func (b EventBatch) Len() int {
	return len(b.events)
}

// IsEmpty reports whether the batch holds no events
func (b EventBatch) IsEmpty() bool {
	return len(b.events) == 0
}

// At returns the i-th event. It panics if i is out of range, like a slice index.
func (b EventBatch) At(i int) Event {
	return b.events[i]
}

// Events returns a copy of the events
func (b EventBatch) Events() []Event {
	return slices.Clone(b.events)
}

// All iterates over the events in arrival order
func (b EventBatch) All() iter.Seq[Event] {
	return slices.Values(b.events)
}

// Pressed reports whether any key event in the batch has the given code
func (b EventBatch) Pressed(code KeyCode) bool {
	return slices.ContainsFunc(b.events, func(e Event) bool {
		return e.Pressed(code)
	})
}

// PressedModified reports whether the batch holds exactly the given key event
func (b EventBatch) PressedModified(ke KeyEvent) bool {
	return slices.ContainsFunc(b.events, func(e Event) bool {
		return e.PressedModified(ke)
	})
}

// Cursor returns the first cursor position report in the batch, if any
func (b EventBatch) Cursor() (Position, bool) {
	for _, e := range b.events {
		if e.Type == EventCursor {
			return Position{Row: e.Row, Column: e.Column}, true
		}
	}
	return Position{}, false
}
