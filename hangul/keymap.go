package hangul

import "unicode"

// latinJamo is the two-set phonetic key table. Lowercase letters map to
// plain consonants and vowels; the uppercase rows carry the five tense
// consonants and the two yotized vowels that have shifted variants.
var latinJamo = map[rune]rune{
	'q': 'ㅂ', 'Q': 'ㅃ',
	'w': 'ㅈ', 'W': 'ㅉ',
	'e': 'ㄷ', 'E': 'ㄸ',
	'r': 'ㄱ', 'R': 'ㄲ',
	't': 'ㅅ', 'T': 'ㅆ',
	'y': 'ㅛ',
	'u': 'ㅕ',
	'i': 'ㅑ',
	'o': 'ㅐ', 'O': 'ㅒ',
	'p': 'ㅔ', 'P': 'ㅖ',
	'a': 'ㅁ',
	's': 'ㄴ',
	'd': 'ㅇ',
	'f': 'ㄹ',
	'g': 'ㅎ',
	'h': 'ㅗ',
	'j': 'ㅓ',
	'k': 'ㅏ',
	'l': 'ㅣ',
	'z': 'ㅋ',
	'x': 'ㅌ',
	'c': 'ㅊ',
	'v': 'ㅍ',
	'b': 'ㅠ',
	'n': 'ㅜ',
	'm': 'ㅡ',
}

// JamoForLatin maps a Latin key rune to its jamo. Uppercase letters without
// a shifted variant fall back to their lowercase mapping. The second return
// is false for characters outside the table.
func JamoForLatin(ch rune) (rune, bool) {
	if j, ok := latinJamo[ch]; ok {
		return j, true
	}
	if j, ok := latinJamo[unicode.ToLower(ch)]; ok {
		return j, true
	}
	return 0, false
}
