// Package layout provides rune tables for the non-composing alternate
// layer: a phonetic Cyrillic transliteration of the Latin physical layout.
// Unlike the Hangul layer there is no assembly automaton; each key maps to
// at most one output rune.
package layout

import "unicode"

// cyrillic is the phonetic (translit-style) lowercase table. Uppercase
// input is derived by case-folding both sides.
var cyrillic = map[rune]rune{
	'a': 'а',
	'b': 'б',
	'c': 'ц',
	'd': 'д',
	'e': 'е',
	'f': 'ф',
	'g': 'г',
	'h': 'х',
	'i': 'и',
	'j': 'й',
	'k': 'к',
	'l': 'л',
	'm': 'м',
	'n': 'н',
	'o': 'о',
	'p': 'п',
	'q': 'я',
	'r': 'р',
	's': 'с',
	't': 'т',
	'u': 'у',
	'v': 'ж',
	'w': 'ш',
	'x': 'ь',
	'y': 'ы',
	'z': 'з',
}

// Cyrillic translates one Latin rune to the Cyrillic layer, preserving
// case. Runes without a mapping pass through unchanged.
func Cyrillic(ch rune) rune {
	if out, ok := cyrillic[ch]; ok {
		return out
	}
	if lower := unicode.ToLower(ch); lower != ch {
		if out, ok := cyrillic[lower]; ok {
			return unicode.ToUpper(out)
		}
	}
	return ch
}
