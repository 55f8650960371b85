//go:build windows

package rawterm

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                        = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW           = kernel32.NewProc("ReadConsoleInputW")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procGetConsoleCursorInfo        = kernel32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo        = kernel32.NewProc("SetConsoleCursorInfo")
)

const (
	keyEventType   = 0x0001
	focusEventType = 0x0010
)

// Control key state flags
const (
	rightAltPressed  = 0x0001
	leftAltPressed   = 0x0002
	rightCtrlPressed = 0x0004
	leftCtrlPressed  = 0x0008
	shiftPressed     = 0x0010
)

type keyEventRecord struct {
	keyDown         int32
	repeatCount     uint16
	virtualKeyCode  uint16
	virtualScanCode uint16
	unicodeChar     uint16
	controlKeyState uint32
}

type focusEventRecord struct {
	setFocus int32
}

// inputRecord is INPUT_RECORD: 2 bytes of event type, 2 bytes of padding and a 16 byte union
type inputRecord struct {
	eventType uint16
	_         [2]byte
	event     [16]byte
}

// readConsoleInput reads one input record, blocking if none is pending
func readConsoleInput(handle windows.Handle) (inputRecord, uint32, error) {
	var rec inputRecord
	var n uint32
	r1, _, err := procReadConsoleInputW.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&rec)),
		1,
		uintptr(unsafe.Pointer(&n)),
	)
	if r1 == 0 {
		return inputRecord{}, 0, wrapOp("ReadConsoleInputW", err)
	}
	return rec, n, nil
}

func fillConsoleOutputCharacter(handle windows.Handle, ch uint16, length uint32, origin windows.Coord) error {
	var written uint32
	r1, _, err := procFillConsoleOutputCharacterW.Call(
		uintptr(handle),
		uintptr(ch),
		uintptr(length),
		uintptr(*(*uint32)(unsafe.Pointer(&origin))),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return wrapOp("FillConsoleOutputCharacterW", err)
	}
	return nil
}

// consoleCursorInfo is CONSOLE_CURSOR_INFO
type consoleCursorInfo struct {
	size    uint32
	visible int32
}

func getConsoleCursorInfo(handle windows.Handle) (consoleCursorInfo, error) {
	var info consoleCursorInfo
	r1, _, err := procGetConsoleCursorInfo.Call(uintptr(handle), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return consoleCursorInfo{}, wrapOp("GetConsoleCursorInfo", err)
	}
	return info, nil
}

func setConsoleCursorInfo(handle windows.Handle, info consoleCursorInfo) error {
	r1, _, err := procSetConsoleCursorInfo.Call(uintptr(handle), uintptr(unsafe.Pointer(&info)))
	if r1 == 0 {
		return wrapOp("SetConsoleCursorInfo", err)
	}
	return nil
}

// decodeInputRecord turns a key down or focus record into an event.
// Key up, mouse, resize and menu records are skipped.
func decodeInputRecord(rec inputRecord) (Event, bool) {
	switch rec.eventType {
	case keyEventType:
		ke := *(*keyEventRecord)(unsafe.Pointer(&rec.event[0]))
		if ke.keyDown == 0 {
			return Event{}, false
		}
		return decodeKeyEventRecord(ke), true
	case focusEventType:
		fe := *(*focusEventRecord)(unsafe.Pointer(&rec.event[0]))
		if fe.setFocus != 0 {
			return Event{Type: EventFocusGained}, true
		}
		return Event{Type: EventFocusLost}, true
	}
	return Event{}, false
}

func decodeKeyEventRecord(ke keyEventRecord) Event {
	mods := controlKeyModifiers(ke.controlKeyState)
	if ke.unicodeChar != 0 {
		switch ke.virtualKeyCode {
		case 0x08, 0x09, 0x0d, 0x1b:
			// These carry a control character, use the key name instead
		default:
			return ModifiedKeyPress(Char(rune(ke.unicodeChar)), mods)
		}
	}
	if ke.virtualKeyCode > 0xff {
		return Event{Type: EventOutOfRange}
	}
	if code, ok := virtualKeyCodes[ke.virtualKeyCode]; ok {
		return ModifiedKeyPress(code, mods)
	}
	// F1 - F12
	if ke.virtualKeyCode >= 0x70 && ke.virtualKeyCode <= 0x7b {
		return ModifiedKeyPress(Function(uint8(ke.virtualKeyCode-0x70)+1), mods)
	}
	return unrecognized
}

var virtualKeyCodes = map[uint16]KeyCode{
	0x08: Code(KeyBackspace),
	0x09: Code(KeyTab),
	0x0d: Code(KeyEnter),
	0x10: Code(KeyShift),
	0x11: Code(KeyControl),
	0x12: Code(KeyAlt),
	0x14: Code(KeyCapsLock),
	0x1b: Code(KeyEscape),
	0x20: Char(' '),
	0x23: Code(KeyEnd),
	0x24: Code(KeyHome),
	0x25: Code(KeyLeftArrow),
	0x26: Code(KeyUpArrow),
	0x27: Code(KeyRightArrow),
	0x28: Code(KeyDownArrow),
}

func controlKeyModifiers(state uint32) KeyModifiers {
	mods := ModNone
	if state&shiftPressed != 0 {
		mods |= ModShift
	}
	if state&(leftCtrlPressed|rightCtrlPressed) != 0 {
		mods |= ModControl
	}
	if state&(leftAltPressed|rightAltPressed) != 0 {
		mods |= ModAlt
	}
	return mods
}
