package rawterm

import "errors"

var (
	// ErrNotSupported is returned when a feature is not implemented
	ErrNotSupported = errors.New("not supported")

	// ErrMouseUnsupported is returned by the decoder when it meets a mouse report introducer
	ErrMouseUnsupported = &unsupportedError{what: "mouse event decoding"}

	// ErrNotTerminal is returned when the given file is not a terminal
	ErrNotTerminal = errors.New("not a terminal")

	// ErrHangup is returned when the terminal on the other side has been closed
	ErrHangup = errors.New("terminal hung up")
)

type unsupportedError struct {
	what string
}

func (e *unsupportedError) Error() string {
	return e.what + ": " + ErrNotSupported.Error()
}

func (e *unsupportedError) Unwrap() error {
	return ErrNotSupported
}

// OpError is returned when an operating system call fails.
// Err is the error returned by the OS, unmodified.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "rawterm: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// wrapOp returns nil if err is nil, or err wrapped in an *OpError
func wrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
