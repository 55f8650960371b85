package rawterm

import (
	"fmt"
	"io"
)

const (
	cursorPositionTemplate = "\033[%d;%dH"
	eraseScreen            = "\033[2J"
	showCursor             = "\033[?25h"
	hideCursor             = "\033[?25l"
	enterAlternateBuffer   = "\033[?1049h"
	leaveAlternateBuffer   = "\033[?1049l"
)

// writeCommand writes an escape sequence without flushing
func writeCommand(w io.Writer, seq string) error {
	_, err := io.WriteString(w, seq)
	return wrapOp("write", err)
}

func writeMoveCursor(w io.Writer, row, column uint16) error {
	_, err := fmt.Fprintf(w, cursorPositionTemplate, row, column)
	return wrapOp("write", err)
}
