package rawterm

import "time"

// Size is the terminal size in character cells
type Size struct {
	Rows    uint16
	Columns uint16
}

// Position is a 1-based cursor position, as reported by the terminal
type Position struct {
	Row    uint16
	Column uint16
}

// Backend is the set of terminal operations every platform provides.
// Exactly one implementation, Terminal, is compiled in per supported OS:
// linux, darwin, the BSDs and windows.
//
// None of the output operations flush; call Flush when the commands
// should reach the terminal.
type Backend interface {
	EnableRawMode() error
	DisableRawMode() error
	EnterAlternateBuffer() error
	LeaveAlternateBuffer() error
	SetNonBlocking() error

	Size() (Size, error)
	MoveCursor(row, column uint16) error
	HideCursor() error
	ShowCursor() error
	EraseEntireScreen() error
	Flush() error

	ReadSingle() (Event, bool, error)
	ReadBatch() (EventBatch, error)
	ReadBatchBlocking(timeout time.Duration) (EventBatch, error)
	CursorPosition() (Position, bool, error)
}
