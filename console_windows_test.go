//go:build windows

package rawterm

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeyEventRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  keyEventRecord
		want Event
	}{
		{"char", keyEventRecord{keyDown: 1, virtualKeyCode: 0x51, unicodeChar: 'q'}, KeyPress(Char('q'))},
		{"shifted char", keyEventRecord{keyDown: 1, virtualKeyCode: 0x51, unicodeChar: 'Q', controlKeyState: shiftPressed}, ModifiedKeyPress(Char('Q'), ModShift)},
		{"enter", keyEventRecord{keyDown: 1, virtualKeyCode: 0x0d, unicodeChar: '\r'}, KeyPress(Code(KeyEnter))},
		{"escape", keyEventRecord{keyDown: 1, virtualKeyCode: 0x1b, unicodeChar: 0x1b}, KeyPress(Code(KeyEscape))},
		{"backspace", keyEventRecord{keyDown: 1, virtualKeyCode: 0x08, unicodeChar: 0x08}, KeyPress(Code(KeyBackspace))},
		{"up", keyEventRecord{keyDown: 1, virtualKeyCode: 0x26}, KeyPress(Code(KeyUpArrow))},
		{"ctrl left", keyEventRecord{keyDown: 1, virtualKeyCode: 0x25, controlKeyState: leftCtrlPressed}, ModifiedKeyPress(Code(KeyLeftArrow), ModControl)},
		{"alt home", keyEventRecord{keyDown: 1, virtualKeyCode: 0x24, controlKeyState: rightAltPressed}, ModifiedKeyPress(Code(KeyHome), ModAlt)},
		{"f1", keyEventRecord{keyDown: 1, virtualKeyCode: 0x70}, KeyPress(Function(1))},
		{"f12", keyEventRecord{keyDown: 1, virtualKeyCode: 0x7b}, KeyPress(Function(12))},
		{"shift alone", keyEventRecord{keyDown: 1, virtualKeyCode: 0x10, controlKeyState: shiftPressed}, ModifiedKeyPress(Code(KeyShift), ModShift)},
		{"unknown", keyEventRecord{keyDown: 1, virtualKeyCode: 0x90}, unrecognized},
		{"out of range", keyEventRecord{keyDown: 1, virtualKeyCode: 0x100}, Event{Type: EventOutOfRange}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeKeyEventRecord(tt.rec))
		})
	}
}

func TestDecodeInputRecord(t *testing.T) {
	require.Equal(t, uintptr(16), unsafe.Sizeof(keyEventRecord{}))
	require.Equal(t, uintptr(20), unsafe.Sizeof(inputRecord{}))

	key := inputRecord{eventType: keyEventType}
	*(*keyEventRecord)(unsafe.Pointer(&key.event[0])) = keyEventRecord{keyDown: 1, virtualKeyCode: 0x41, unicodeChar: 'a'}
	ev, ok := decodeInputRecord(key)
	require.True(t, ok)
	assert.Equal(t, KeyPress(Char('a')), ev)

	// Key up is skipped
	*(*keyEventRecord)(unsafe.Pointer(&key.event[0])) = keyEventRecord{virtualKeyCode: 0x41, unicodeChar: 'a'}
	_, ok = decodeInputRecord(key)
	assert.False(t, ok)

	focus := inputRecord{eventType: focusEventType}
	*(*focusEventRecord)(unsafe.Pointer(&focus.event[0])) = focusEventRecord{setFocus: 1}
	ev, ok = decodeInputRecord(focus)
	require.True(t, ok)
	assert.Equal(t, Event{Type: EventFocusGained}, ev)

	focus.event = [16]byte{}
	ev, ok = decodeInputRecord(focus)
	require.True(t, ok)
	assert.Equal(t, Event{Type: EventFocusLost}, ev)

	// Mouse records are skipped
	_, ok = decodeInputRecord(inputRecord{eventType: 0x0002})
	assert.False(t, ok)
}

func TestCursorVisibilityNeedsConsole(t *testing.T) {
	require.Equal(t, uintptr(8), unsafe.Sizeof(consoleCursorInfo{}))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	term := NewTerminal(r, w)
	err = term.HideCursor()
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "GetConsoleCursorInfo", opErr.Op)

	err = term.ShowCursor()
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "GetConsoleCursorInfo", opErr.Op)
}
