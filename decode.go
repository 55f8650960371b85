package rawterm

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"unicode/utf8"
)

const (
	esc = 0x1b

	// maxSequenceLength bounds how many bytes a numeric control sequence may
	// consume before it is given up on, counting the leading ESC [
	maxSequenceLength = 126
)

// DecodeEvent reads bytes from r, one at a time, until one event has been
// decoded. It returns io.EOF if r was exhausted before any event was found.
// A control sequence that is cut short by the end of the input is returned
// as an EventUnrecognized event. Bytes are never pushed back to r.
func DecodeEvent(r io.ByteReader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	for {
		if b == esc {
			return decodeEscape(r)
		}
		ev, ok, next, err := decodeChar(r, b)
		if err != nil {
			return Event{}, err
		}
		if next.ok {
			// The sequence was broken off by a byte that starts something new
			b = next.b
			continue
		}
		if ok {
			return ev, nil
		}
		// Not a valid UTF-8 sequence, skip it
		if b, err = r.ReadByte(); err != nil {
			return Event{}, err
		}
	}
}

// DecodeBatch decodes all events found in p, in order. If the decoder
// returns an error, the events decoded up to that point are returned with it.
func DecodeBatch(p []byte) (EventBatch, error) {
	return decodeAll(bytes.NewReader(p))
}

func decodeAll(r io.ByteReader) (EventBatch, error) {
	var events []Event
	for {
		ev, err := DecodeEvent(r)
		if errors.Is(err, io.EOF) {
			return EventBatch{events: events}, nil
		}
		if err != nil {
			return EventBatch{events: events}, err
		}
		events = append(events, ev)
	}
}

// readByte reads the next byte, ok is false at the end of the input
func readByte(r io.ByteReader) (b byte, ok bool, err error) {
	b, err = r.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// decodeEscape is entered after ESC
func decodeEscape(r io.ByteReader) (Event, error) {
	b, ok, err := readByte(r)
	if err != nil || !ok {
		return unrecognized, err
	}
	switch b {
	case '[':
		return decodeCSI(r)
	case 'O':
		return decodeSS3(r)
	case esc:
		return KeyPress(Code(KeyEscape)), nil
	}
	return unrecognized, nil
}

// decodeCSI is entered after ESC [
func decodeCSI(r io.ByteReader) (Event, error) {
	b, ok, err := readByte(r)
	if err != nil || !ok {
		return unrecognized, err
	}
	switch b {
	case 'A':
		return KeyPress(Code(KeyUpArrow)), nil
	case 'B':
		return KeyPress(Code(KeyDownArrow)), nil
	case 'C':
		return KeyPress(Code(KeyRightArrow)), nil
	case 'D':
		return KeyPress(Code(KeyLeftArrow)), nil
	case 'F':
		return KeyPress(Code(KeyEnd)), nil
	case 'H':
		return KeyPress(Code(KeyHome)), nil
	case 'Z':
		return ModifiedKeyPress(Code(KeyBackTab), ModShift), nil
	case 'I':
		return Event{Type: EventFocusGained}, nil
	case 'O':
		return Event{Type: EventFocusLost}, nil
	case 'M', '<':
		// X10 and SGR mouse reports
		return Event{}, ErrMouseUnsupported
	}
	if isDigit(b) {
		return decodeNumeric(r, b)
	}
	return unrecognized, nil
}

// decodeSS3 is entered after ESC O
func decodeSS3(r io.ByteReader) (Event, error) {
	b, ok, err := readByte(r)
	if err != nil || !ok {
		return unrecognized, err
	}
	switch b {
	case 'D':
		return KeyPress(Code(KeyLeftArrow)), nil
	case 'C':
		return KeyPress(Code(KeyUpArrow)), nil
	case 'B':
		return KeyPress(Code(KeyDownArrow)), nil
	case 'H':
		return KeyPress(Code(KeyHome)), nil
	case 'F':
		return KeyPress(Code(KeyEnd)), nil
	case 'P', 'Q', 'R', 'S':
		return KeyPress(Function(1 + b - 'P')), nil
	}
	return unrecognized, nil
}

// decodeNumeric is entered after ESC [ and one digit. Only cursor position
// reports (ESC [ row ; column R) are understood.
func decodeNumeric(r io.ByteReader, first byte) (Event, error) {
	registers := [][]byte{{first}}
	consumed := 3
	for {
		if consumed >= maxSequenceLength {
			return unrecognized, nil
		}
		b, ok, err := readByte(r)
		if err != nil || !ok {
			return unrecognized, err
		}
		consumed++

		last := len(registers) - 1
		switch {
		case isDigit(b):
			registers[last] = append(registers[last], b)
		case b == ';':
			registers = append(registers, nil)
		case b == 'R' && len(registers) == 2:
			row, err := strconv.ParseUint(string(registers[0]), 10, 16)
			if err != nil {
				return unrecognized, nil
			}
			column, err := strconv.ParseUint(string(registers[1]), 10, 16)
			if err != nil {
				return unrecognized, nil
			}
			return CursorReport(uint16(row), uint16(column)), nil
		default:
			return unrecognized, nil
		}
	}
}

// pendingByte is a byte that has been read but not decoded yet
type pendingByte struct {
	b  byte
	ok bool
}

// decodeChar decodes the UTF-8 sequence that starts with lead.
// ok is false if the bytes do not form a valid rune. A byte that cannot
// continue the sequence ends it and is returned in next, to be decoded on
// its own.
func decodeChar(r io.ByteReader, lead byte) (ev Event, ok bool, next pendingByte, err error) {
	n := utf8SeqLen(lead)
	if n == 0 {
		return Event{}, false, pendingByte{}, nil
	}
	var buf [utf8.UTFMax]byte
	buf[0] = lead
	for i := 1; i < n; i++ {
		b, more, err := readByte(r)
		if err != nil || !more {
			return Event{}, false, pendingByte{}, err
		}
		if b&0xc0 != 0x80 {
			return Event{}, false, pendingByte{b: b, ok: true}, nil
		}
		buf[i] = b
	}
	ch, size := utf8.DecodeRune(buf[:n])
	if ch == utf8.RuneError && size <= 1 {
		return Event{}, false, pendingByte{}, nil
	}
	return KeyPress(Char(ch)), true, pendingByte{}, nil
}

// utf8SeqLen returns the expected UTF-8 sequence length from the lead byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
