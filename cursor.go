package rawterm

import (
	"io"
	"time"
)

const requestCursorPosition = "\033[6n"

type flushWriter interface {
	io.Writer
	Flush() error
}

type blockingBatchReader interface {
	ReadBatchBlocking(timeout time.Duration) (EventBatch, error)
}

// queryCursorPosition sends a cursor position request and waits up to budget
// for the reply. Other events that arrive in the meantime are dropped.
// ok is false if the terminal did not reply in time.
func queryCursorPosition(w flushWriter, r blockingBatchReader, budget time.Duration) (pos Position, ok bool, err error) {
	if _, err := io.WriteString(w, requestCursorPosition); err != nil {
		return Position{}, false, wrapOp("write", err)
	}
	if err := w.Flush(); err != nil {
		return Position{}, false, wrapOp("flush", err)
	}

	deadline := time.Now().Add(budget)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Position{}, false, nil
		}
		batch, err := r.ReadBatchBlocking(remaining)
		if err != nil {
			return Position{}, false, err
		}
		if pos, ok := batch.Cursor(); ok {
			return pos, true, nil
		}
	}
}
