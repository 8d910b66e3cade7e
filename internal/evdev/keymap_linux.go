//go:build linux

package evdev

import "github.com/sodam-ime/sodam/engine"

// Kernel KEY_* codes from <linux/input-event-codes.h>, limited to what the
// engine consumes.
const (
	keyEsc        = 1
	key1          = 2
	key0          = 11
	keyBackspace  = 14
	keyQ          = 16
	keyW          = 17
	keyE          = 18
	keyR          = 19
	keyT          = 20
	keyY          = 21
	keyU          = 22
	keyI          = 23
	keyO          = 24
	keyP          = 25
	keyEnter      = 28
	keyLeftCtrl   = 29
	keyA          = 30
	keyS          = 31
	keyD          = 32
	keyF          = 33
	keyG          = 34
	keyH          = 35
	keyJ          = 36
	keyK          = 37
	keyL          = 38
	keySemicolon  = 39
	keyLeftShift  = 42
	keyZ          = 44
	keyX          = 45
	keyC          = 46
	keyV          = 47
	keyB          = 48
	keyN          = 49
	keyM          = 50
	keyComma      = 51
	keyDot        = 52
	keySlash      = 53
	keyRightShift = 54
	keyLeftAlt    = 56
	keySpace      = 57
	keyCapsLock   = 58
	keyRightCtrl  = 97
	keyRightAlt   = 100
)

// letterRunes maps letter key codes to their lowercase rune. Case is the
// engine's job, so shift state is never applied here.
var letterRunes = map[uint16]rune{
	keyQ: 'q', keyW: 'w', keyE: 'e', keyR: 'r', keyT: 't',
	keyY: 'y', keyU: 'u', keyI: 'i', keyO: 'o', keyP: 'p',
	keyA: 'a', keyS: 's', keyD: 'd', keyF: 'f', keyG: 'g',
	keyH: 'h', keyJ: 'j', keyK: 'k', keyL: 'l',
	keyZ: 'z', keyX: 'x', keyC: 'c', keyV: 'v', keyB: 'b',
	keyN: 'n', keyM: 'm',
}

// digitRunes covers the top number row (KEY_1..KEY_0 are contiguous).
func digitRune(code uint16) (rune, bool) {
	if code >= key1 && code < key0 {
		return rune('1' + code - key1), true
	}
	if code == key0 {
		return '0', true
	}
	return 0, false
}

// translate maps a kernel key code to an engine event. Right Alt toggles the
// Hangul layer and Right Ctrl the Cyrillic layer, matching the usual Korean
// keyboard convention; the dot key is the dual-role key.
func translate(code uint16, press bool) (engine.KeyEvent, bool) {
	if ch, ok := letterRunes[code]; ok {
		return engine.RuneKey(ch, press), true
	}
	if ch, ok := digitRune(code); ok {
		return engine.RuneKey(ch, press), true
	}
	switch code {
	case keySpace:
		return engine.Key(engine.CodeSpace, press), true
	case keyEnter:
		return engine.Key(engine.CodeEnter, press), true
	case keyBackspace:
		return engine.Key(engine.CodeBackspace, press), true
	case keyLeftShift, keyRightShift:
		return engine.Key(engine.CodeShift, press), true
	case keyCapsLock:
		return engine.Key(engine.CodeCaps, press), true
	case keyDot:
		return engine.Key(engine.CodeDual, press), true
	case keyRightAlt:
		return engine.Key(engine.CodeHangulToggle, press), true
	case keyRightCtrl:
		return engine.Key(engine.CodeCyrillicToggle, press), true
	case keyComma:
		return engine.RuneKey(',', press), true
	case keySlash:
		return engine.RuneKey('/', press), true
	case keySemicolon:
		return engine.RuneKey(';', press), true
	}
	return engine.KeyEvent{}, false
}
