// Package hangul assembles jamo fed from a Latin physical layout into
// composed syllable blocks. The composer is a pure automaton over three
// component slots (initial, medial, final); combination and decombination
// rules are static bidirectional tables so that combine and split are exact
// inverses.
package hangul

// SyllableBase is the first code point of the precomposed syllable block.
const SyllableBase rune = 0xAC00

// Slot counts of the composed syllable space.
const (
	NumChoseong  = 19
	NumJungseong = 21
	NumJongseong = 27
)

// choseong holds the 19 leading consonants in syllable order, as
// compatibility jamo. The slice doubles as the display table for an
// initial-only composing state.
var choseong = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// jungseong holds the 21 vowels in syllable order.
var jungseong = []rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
	'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ',
	'ㅣ',
}

// jongseong holds the 27 trailing consonants in syllable order. Index i
// encodes as final value i+1 in the syllable formula; "no final" is -1.
var jongseong = []rune{
	'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ',
	'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ',
	'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// nullInitial is the "no sound" leading consonant synthesized when a vowel
// arrives with no initial.
const nullInitial = 'ㅇ'

var (
	choseongIndex  = indexOf(choseong)
	jungseongIndex = indexOf(jungseong)
	jongseongIndex = indexOf(jongseong)
)

func indexOf(runes []rune) map[rune]int {
	m := make(map[rune]int, len(runes))
	for i, r := range runes {
		m[r] = i
	}
	return m
}

type jamoPair struct {
	first, second rune
}

// initialCombine maps a doubled plain consonant to its tense form.
var initialCombine = map[jamoPair]rune{
	{'ㄱ', 'ㄱ'}: 'ㄲ',
	{'ㄷ', 'ㄷ'}: 'ㄸ',
	{'ㅂ', 'ㅂ'}: 'ㅃ',
	{'ㅅ', 'ㅅ'}: 'ㅆ',
	{'ㅈ', 'ㅈ'}: 'ㅉ',
}

// medialCombine maps the seven vowel pairs that form diphthongs.
var medialCombine = map[jamoPair]rune{
	{'ㅗ', 'ㅏ'}: 'ㅘ',
	{'ㅗ', 'ㅐ'}: 'ㅙ',
	{'ㅗ', 'ㅣ'}: 'ㅚ',
	{'ㅜ', 'ㅓ'}: 'ㅝ',
	{'ㅜ', 'ㅔ'}: 'ㅞ',
	{'ㅜ', 'ㅣ'}: 'ㅟ',
	{'ㅡ', 'ㅣ'}: 'ㅢ',
}

// finalCombine maps the eleven two-consonant compound finals.
var finalCombine = map[jamoPair]rune{
	{'ㄱ', 'ㅅ'}: 'ㄳ',
	{'ㄴ', 'ㅈ'}: 'ㄵ',
	{'ㄴ', 'ㅎ'}: 'ㄶ',
	{'ㄹ', 'ㄱ'}: 'ㄺ',
	{'ㄹ', 'ㅁ'}: 'ㄻ',
	{'ㄹ', 'ㅂ'}: 'ㄼ',
	{'ㄹ', 'ㅅ'}: 'ㄽ',
	{'ㄹ', 'ㅌ'}: 'ㄾ',
	{'ㄹ', 'ㅍ'}: 'ㄿ',
	{'ㄹ', 'ㅎ'}: 'ㅀ',
	{'ㅂ', 'ㅅ'}: 'ㅄ',
}

// The split tables are derived by inversion so combine and split cannot
// drift apart.
var (
	initialSplit = invert(initialCombine)
	medialSplit  = invert(medialCombine)
	finalSplit   = invert(finalCombine)
)

func invert(combine map[jamoPair]rune) map[rune]jamoPair {
	m := make(map[rune]jamoPair, len(combine))
	for pair, r := range combine {
		m[r] = pair
	}
	return m
}

// CombineInitial merges two leading consonants into a tense consonant.
func CombineInitial(a, b rune) (rune, bool) {
	r, ok := initialCombine[jamoPair{a, b}]
	return r, ok
}

// SplitInitial splits a tense leading consonant back into its pair.
func SplitInitial(r rune) (first, second rune, ok bool) {
	p, ok := initialSplit[r]
	return p.first, p.second, ok
}

// CombineMedial merges two vowels into a diphthong.
func CombineMedial(a, b rune) (rune, bool) {
	r, ok := medialCombine[jamoPair{a, b}]
	return r, ok
}

// SplitMedial splits a diphthong back into its pair.
func SplitMedial(r rune) (first, second rune, ok bool) {
	p, ok := medialSplit[r]
	return p.first, p.second, ok
}

// CombineFinal merges two trailing consonants into a compound final.
func CombineFinal(a, b rune) (rune, bool) {
	r, ok := finalCombine[jamoPair{a, b}]
	return r, ok
}

// SplitFinal splits a compound final back into its pair.
func SplitFinal(r rune) (first, second rune, ok bool) {
	p, ok := finalSplit[r]
	return p.first, p.second, ok
}

// IsVowel reports whether j is a medial jamo.
func IsVowel(j rune) bool {
	_, ok := jungseongIndex[j]
	return ok
}
