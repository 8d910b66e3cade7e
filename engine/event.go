package engine

// Code identifies the logical key of an event. Hosts translate physical
// key codes (evdev, HID, terminal bytes) into these before calling the
// engine.
type Code uint8

const (
	// CodeRune is a printable character key; KeyEvent.Rune carries the
	// lowercase rune of the key.
	CodeRune Code = iota
	CodeSpace
	CodeEnter
	CodeBackspace
	// CodeShift drives the timed shift modifier.
	CodeShift
	// CodeCaps drives the simple lock modifier.
	CodeCaps
	// CodeDual drives the triple-role key.
	CodeDual
	// CodeHangulToggle and CodeCyrillicToggle are the layer trigger keys.
	CodeHangulToggle
	CodeCyrillicToggle
)

var codeNames = map[Code]string{
	CodeRune:           "rune",
	CodeSpace:          "space",
	CodeEnter:          "enter",
	CodeBackspace:      "backspace",
	CodeShift:          "shift",
	CodeCaps:           "caps",
	CodeDual:           "dual",
	CodeHangulToggle:   "hangul",
	CodeCyrillicToggle: "cyrillic",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// CodeByName resolves a logical key name as used in replay scripts and
// configuration. Returns false for unknown names.
func CodeByName(name string) (Code, bool) {
	for code, n := range codeNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// KeyEvent is one physical key transition.
type KeyEvent struct {
	Code  Code
	Rune  rune // set for CodeRune events only
	Press bool // true = key down, false = key up
}

// RuneKey builds a printable-character event.
func RuneKey(ch rune, press bool) KeyEvent {
	return KeyEvent{Code: CodeRune, Rune: ch, Press: press}
}

// Key builds a non-printing key event.
func Key(code Code, press bool) KeyEvent {
	return KeyEvent{Code: code, Press: press}
}
