//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rawterm

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal controls a terminal through its input and output file descriptors.
// Output commands are buffered until Flush is called.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	w     *bufio.Writer
	orig  *term.State
	owned bool
	cfg   Config
	log   *slog.Logger
}

var _ Backend = (*Terminal)(nil)

// NewTerminal returns a Terminal that reads from in and writes to out.
// If in is a terminal, its current mode is saved so that Restore can return to it.
func NewTerminal(in, out *os.File, opts ...Option) *Terminal {
	cfg := newConfig(opts)
	t := &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		w:     bufio.NewWriter(out),
		cfg:   cfg,
		log:   cfg.Logger,
	}
	if term.IsTerminal(t.inFd) {
		if st, err := term.GetState(t.inFd); err == nil {
			t.orig = st
		}
	}
	return t
}

// Stdio returns a Terminal for os.Stdin and os.Stdout
func Stdio(opts ...Option) *Terminal {
	return NewTerminal(os.Stdin, os.Stdout, opts...)
}

// OpenTTY opens the controlling terminal device (see TTYPath) for both input and output
func OpenTTY(opts ...Option) (*Terminal, error) {
	path := TTYPath()
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, wrapOp("open "+path, err)
	}
	t := NewTerminal(f, f, opts...)
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
	}
	return err
}

// IsTerminal reports whether the input is a terminal, including Cygwin and MSYS ptys
func (t *Terminal) IsTerminal() bool {
	// os.File.Fd would switch the descriptor back to blocking mode
	fd := uintptr(t.inFd)
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Restore returns the input to the mode it had when the Terminal was created
func (t *Terminal) Restore() error {
	if t.orig == nil {
		return nil
	}
	return wrapOp("restore", term.Restore(t.inFd, t.orig))
}

// EnableRawMode turns off line buffering and echo on the input
func (t *Terminal) EnableRawMode() error {
	if err := t.setCanonical(false); err != nil {
		return err
	}
	t.log.Debug("raw mode enabled", "fd", t.inFd)
	return nil
}

// DisableRawMode turns line buffering and echo back on
func (t *Terminal) DisableRawMode() error {
	if err := t.setCanonical(true); err != nil {
		return err
	}
	t.log.Debug("raw mode disabled", "fd", t.inFd)
	return nil
}

// setCanonical toggles line buffering and echo. Pending input is discarded
// when the new mode is applied.
func (t *Terminal) setCanonical(enable bool) error {
	var attrs unix.Termios
	if err := termios.Tcgetattr(uintptr(t.inFd), &attrs); err != nil {
		return wrapOp("tcgetattr", err)
	}
	if enable {
		attrs.Lflag |= unix.ECHO | unix.ICANON
	} else {
		attrs.Lflag &^= unix.ECHO | unix.ICANON
	}
	return wrapOp("tcsetattr", termios.Tcsetattr(uintptr(t.inFd), termios.TCSAFLUSH, &attrs))
}

// SetNonBlocking sets O_NONBLOCK on the input descriptor
func (t *Terminal) SetNonBlocking() error {
	flags, err := unix.FcntlInt(uintptr(t.inFd), unix.F_GETFL, 0)
	if err != nil {
		return wrapOp("fcntl F_GETFL", err)
	}
	if _, err := unix.FcntlInt(uintptr(t.inFd), unix.F_SETFL, flags|unix.O_NONBLOCK); err != nil {
		return wrapOp("fcntl F_SETFL", err)
	}
	return nil
}

// EnterAlternateBuffer switches to the alternate screen
func (t *Terminal) EnterAlternateBuffer() error {
	return writeCommand(t.w, enterAlternateBuffer)
}

// LeaveAlternateBuffer switches back to the main screen
func (t *Terminal) LeaveAlternateBuffer() error {
	return writeCommand(t.w, leaveAlternateBuffer)
}

// Size returns the number of rows and columns of the output terminal
func (t *Terminal) Size() (Size, error) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, wrapOp("ioctl TIOCGWINSZ", err)
	}
	return Size{Rows: ws.Row, Columns: ws.Col}, nil
}

// MoveCursor moves the cursor to the given 1-based row and column
func (t *Terminal) MoveCursor(row, column uint16) error {
	return writeMoveCursor(t.w, row, column)
}

// HideCursor makes the cursor invisible
func (t *Terminal) HideCursor() error {
	return writeCommand(t.w, hideCursor)
}

// ShowCursor makes the cursor visible
func (t *Terminal) ShowCursor() error {
	return writeCommand(t.w, showCursor)
}

// EraseEntireScreen clears the screen, the cursor is not moved
func (t *Terminal) EraseEntireScreen() error {
	return writeCommand(t.w, eraseScreen)
}

// Write writes p to the output buffer
func (t *Terminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Flush writes the buffered output to the terminal
func (t *Terminal) Flush() error {
	return wrapOp("flush", t.w.Flush())
}

// RequestCursorPosition writes the cursor position request, without flushing or waiting for the reply
func (t *Terminal) RequestCursorPosition() error {
	return writeCommand(t.w, requestCursorPosition)
}

// CursorPosition asks the terminal where the cursor is and waits for the reply.
// The input must be in raw mode. ok is false if the terminal did not reply
// within the configured budget, which is one second by default.
func (t *Terminal) CursorPosition() (Position, bool, error) {
	pos, ok, err := queryCursorPosition(t.w, t, t.cfg.CursorTimeout)
	if err == nil && !ok {
		t.log.Debug("no cursor position reply", "timeout", t.cfg.CursorTimeout)
	}
	return pos, ok, err
}

// ReadSingle reads and decodes one event, one byte per read call.
// It blocks until an event is complete if the input is blocking.
// ok is false if the input ended, or had no data in non-blocking mode.
func (t *Terminal) ReadSingle() (Event, bool, error) {
	ev, err := DecodeEvent(&fdByteReader{fd: t.inFd})
	if errors.Is(err, io.EOF) {
		return Event{}, false, nil
	}
	if err != nil {
		return Event{}, false, err
	}
	return ev, true, nil
}

// ReadBatch decodes the bytes that are available right now. It never blocks.
func (t *Terminal) ReadBatch() (EventBatch, error) {
	n, err := unix.IoctlGetInt(t.inFd, fionread)
	if err != nil {
		return EventBatch{}, wrapOp("ioctl FIONREAD", err)
	}
	if n <= 0 {
		return EventBatch{}, nil
	}
	buf := make([]byte, n)
	if err := t.readFull(buf); err != nil {
		return EventBatch{}, err
	}
	return DecodeBatch(buf)
}

// ReadBatchBlocking waits up to timeout for input, then decodes the bytes
// that are available. The batch is empty if the timeout expired.
// ErrHangup is returned once the other side of the terminal is gone.
func (t *Terminal) ReadBatchBlocking(timeout time.Duration) (EventBatch, error) {
	deadline := time.Now().Add(timeout)
	fds := []unix.PollFd{
		{Fd: int32(t.inFd), Events: unix.POLLIN},
	}
	for {
		_, err := unix.Poll(fds, pollTimeout(time.Until(deadline)))
		if errors.Is(err, unix.EINTR) {
			// A caught signal, such as SIGWINCH, interrupted the wait
			continue
		}
		if err != nil {
			return EventBatch{}, wrapOp("poll", err)
		}
		break
	}

	hungUp := fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0
	if fds[0].Revents&unix.POLLIN == 0 {
		if hungUp {
			return EventBatch{}, wrapOp("poll", ErrHangup)
		}
		return EventBatch{}, nil
	}
	batch, err := t.ReadBatch()
	if err == nil && batch.IsEmpty() && hungUp {
		return EventBatch{}, wrapOp("poll", ErrHangup)
	}
	return batch, err
}

// pollTimeout converts d to milliseconds, rounding up so that a short
// positive timeout does not turn into a busy poll
func pollTimeout(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Millisecond - 1) / time.Millisecond)
}

func (t *Terminal) readFull(buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := unix.Read(t.inFd, buf[off:])
		if err != nil {
			return wrapOp("read", err)
		}
		if n == 0 {
			return wrapOp("read", io.ErrUnexpectedEOF)
		}
		off += n
	}
	return nil
}

// fdByteReader reads one byte per read call, so that nothing is read past
// the end of the decoded event
type fdByteReader struct {
	fd int
}

func (r *fdByteReader) ReadByte() (byte, error) {
	var b [1]byte
	n, err := unix.Read(r.fd, b[:])
	if errors.Is(err, unix.EAGAIN) {
		return 0, io.EOF
	}
	if err != nil {
		return 0, wrapOp("read", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return b[0], nil
}
