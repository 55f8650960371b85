//go:build windows

package rawterm

import (
	"bufio"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

const (
	enableProcessedInput = 0x0001
	enableLineInput      = 0x0002
	enableEchoInput      = 0x0004

	enableProcessedOutput = 0x0001
)

// Terminal controls a console through its input and output handles.
// Escape sequences are buffered until Flush is called, console API calls
// take effect immediately.
type Terminal struct {
	in    *os.File
	out   *os.File
	hIn   windows.Handle
	hOut  windows.Handle
	w     *bufio.Writer
	orig  *term.State
	owned bool
	cfg   Config
	log   *slog.Logger
}

var _ Backend = (*Terminal)(nil)

// NewTerminal returns a Terminal that reads from in and writes to out.
// If in is a console, its current mode is saved so that Restore can return to it.
func NewTerminal(in, out *os.File, opts ...Option) *Terminal {
	cfg := newConfig(opts)
	t := &Terminal{
		in:   in,
		out:  out,
		hIn:  windows.Handle(in.Fd()),
		hOut: windows.Handle(out.Fd()),
		w:    bufio.NewWriter(out),
		cfg:  cfg,
		log:  cfg.Logger,
	}
	if term.IsTerminal(int(in.Fd())) {
		if st, err := term.GetState(int(in.Fd())); err == nil {
			t.orig = st
		}
	}
	return t
}

// Stdio returns a Terminal for os.Stdin and os.Stdout
func Stdio(opts ...Option) *Terminal {
	return NewTerminal(os.Stdin, os.Stdout, opts...)
}

// OpenTTY opens the console input and output buffers, CONIN$ and CONOUT$
func OpenTTY(opts ...Option) (*Terminal, error) {
	in, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
	if err != nil {
		return nil, wrapOp("open CONIN$", err)
	}
	out, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		in.Close()
		return nil, wrapOp("open CONOUT$", err)
	}
	t := NewTerminal(in, out, opts...)
	t.owned = true
	return t, nil
}

// Close flushes pending output. A terminal opened with OpenTTY is also closed.
func (t *Terminal) Close() error {
	err := t.Flush()
	if t.owned {
		if cerr := t.in.Close(); cerr != nil && err == nil {
			err = wrapOp("close", cerr)
		}
		if cerr := t.out.Close(); cerr != nil && err == nil {
			err = wrapOp("close", cerr)
		}
	}
	return err
}

// IsTerminal reports whether the input is a console, or a Cygwin or MSYS pty
func (t *Terminal) IsTerminal() bool {
	fd := t.in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Restore returns the input to the mode it had when the Terminal was created
func (t *Terminal) Restore() error {
	if t.orig == nil {
		return nil
	}
	return wrapOp("restore", term.Restore(int(t.in.Fd()), t.orig))
}

// EnableRawMode turns off line input, echo and processed input on the console
func (t *Terminal) EnableRawMode() error {
	var mode uint32
	if err := windows.GetConsoleMode(t.hIn, &mode); err != nil {
		return wrapOp("GetConsoleMode", err)
	}
	mode &^= enableLineInput | enableEchoInput | enableProcessedInput
	if err := windows.SetConsoleMode(t.hIn, mode); err != nil {
		return wrapOp("SetConsoleMode", err)
	}
	t.log.Debug("raw mode enabled", "handle", t.hIn)
	return nil
}

// DisableRawMode turns line input, echo and processed input back on
func (t *Terminal) DisableRawMode() error {
	var mode uint32
	if err := windows.GetConsoleMode(t.hIn, &mode); err != nil {
		return wrapOp("GetConsoleMode", err)
	}
	mode |= enableLineInput | enableEchoInput | enableProcessedInput
	if err := windows.SetConsoleMode(t.hIn, mode); err != nil {
		return wrapOp("SetConsoleMode", err)
	}
	t.log.Debug("raw mode disabled", "handle", t.hIn)
	return nil
}

// SetNonBlocking does nothing, console input can always be polled
func (t *Terminal) SetNonBlocking() error {
	return nil
}

// EnterAlternateBuffer switches to the alternate screen
func (t *Terminal) EnterAlternateBuffer() error {
	return writeCommand(t.w, enterAlternateBuffer)
}

// LeaveAlternateBuffer switches back to the main screen and turns
// processed output back on for the output handle
func (t *Terminal) LeaveAlternateBuffer() error {
	if err := writeCommand(t.w, leaveAlternateBuffer); err != nil {
		return err
	}
	var mode uint32
	if err := windows.GetConsoleMode(t.hOut, &mode); err != nil {
		return wrapOp("GetConsoleMode", err)
	}
	return wrapOp("SetConsoleMode", windows.SetConsoleMode(t.hOut, mode|enableProcessedOutput))
}

func (t *Terminal) screenBufferInfo() (windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(t.hOut, &info); err != nil {
		return info, wrapOp("GetConsoleScreenBufferInfo", err)
	}
	return info, nil
}

// Size returns the number of rows and columns of the visible console window
func (t *Terminal) Size() (Size, error) {
	info, err := t.screenBufferInfo()
	if err != nil {
		return Size{}, err
	}
	// Window.Right/Bottom are inclusive 0-based coordinates
	return Size{
		Rows:    uint16(info.Window.Bottom - info.Window.Top + 1),
		Columns: uint16(info.Window.Right - info.Window.Left + 1),
	}, nil
}

// MoveCursor moves the cursor to the given 1-based row and column
func (t *Terminal) MoveCursor(row, column uint16) error {
	pos := windows.Coord{X: int16(column) - 1, Y: int16(row) - 1}
	return wrapOp("SetConsoleCursorPosition", windows.SetConsoleCursorPosition(t.hOut, pos))
}

func (t *Terminal) setCursorVisible(visible bool) error {
	info, err := getConsoleCursorInfo(t.hOut)
	if err != nil {
		return err
	}
	info.visible = 0
	if visible {
		info.visible = 1
	}
	return setConsoleCursorInfo(t.hOut, info)
}

// HideCursor makes the cursor invisible
func (t *Terminal) HideCursor() error {
	return t.setCursorVisible(false)
}

// ShowCursor makes the cursor visible
func (t *Terminal) ShowCursor() error {
	return t.setCursorVisible(true)
}

// EraseEntireScreen fills the whole screen buffer with blanks, the cursor is not moved
func (t *Terminal) EraseEntireScreen() error {
	info, err := t.screenBufferInfo()
	if err != nil {
		return err
	}
	cells := uint32(info.Size.X) * uint32(info.Size.Y)
	return fillConsoleOutputCharacter(t.hOut, ' ', cells, windows.Coord{})
}

// Write writes p to the output buffer
func (t *Terminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Flush writes the buffered output to the console
func (t *Terminal) Flush() error {
	return wrapOp("flush", t.w.Flush())
}

// RequestCursorPosition writes the cursor position request, without flushing or waiting for the reply
func (t *Terminal) RequestCursorPosition() error {
	return writeCommand(t.w, requestCursorPosition)
}

// CursorPosition returns the cursor position of the screen buffer.
// The console answers directly, so ok is always true when err is nil.
func (t *Terminal) CursorPosition() (Position, bool, error) {
	info, err := t.screenBufferInfo()
	if err != nil {
		return Position{}, false, err
	}
	return Position{
		Row:    uint16(info.CursorPosition.Y) + 1,
		Column: uint16(info.CursorPosition.X) + 1,
	}, true, nil
}

// ReadSingle blocks until one input record decodes to an event
func (t *Terminal) ReadSingle() (Event, bool, error) {
	for {
		rec, n, err := readConsoleInput(t.hIn)
		if err != nil {
			return Event{}, false, err
		}
		if n == 0 {
			return Event{}, false, nil
		}
		if ev, ok := decodeInputRecord(rec); ok {
			return ev, true, nil
		}
	}
}

// ReadBatch decodes the input records that are pending right now. It never blocks.
func (t *Terminal) ReadBatch() (EventBatch, error) {
	var pending uint32
	if err := windows.GetNumberOfConsoleInputEvents(t.hIn, &pending); err != nil {
		return EventBatch{}, wrapOp("GetNumberOfConsoleInputEvents", err)
	}
	var events []Event
	for i := uint32(0); i < pending; i++ {
		rec, n, err := readConsoleInput(t.hIn)
		if err != nil {
			return EventBatch{events: events}, err
		}
		if n == 0 {
			break
		}
		if ev, ok := decodeInputRecord(rec); ok {
			events = append(events, ev)
		}
	}
	return EventBatch{events: events}, nil
}

// ReadBatchBlocking waits up to timeout for input, then decodes the pending
// input records. The batch is empty if the timeout expired.
func (t *Terminal) ReadBatchBlocking(timeout time.Duration) (EventBatch, error) {
	ms := uint32(0)
	if timeout > 0 {
		ms = uint32((timeout + time.Millisecond - 1) / time.Millisecond)
	}
	event, err := windows.WaitForSingleObject(t.hIn, ms)
	if err != nil {
		return EventBatch{}, wrapOp("WaitForSingleObject", err)
	}
	if event == uint32(windows.WAIT_TIMEOUT) {
		return EventBatch{}, nil
	}
	return t.ReadBatch()
}
