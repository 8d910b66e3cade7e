package hangul

import "github.com/sodam-ime/sodam/textsink"

// Composer is the jamo-assembly automaton. It consumes Latin key runes,
// maps them through the two-set key table and assembles initial/medial/
// final component slots into composed syllables, pushing in-progress text
// through the sink after every mutation and finalized text on commit.
//
// The automaton's states are empty, initial-only, initial+medial and
// initial+medial+final; a final can only be present while a medial is set,
// and a medial always has an initial (a lone vowel synthesizes the "no
// sound" initial).
type Composer struct {
	sink textsink.Sink

	// Component slots as indices into the syllable tables; -1 means unset.
	ini, med, fin int

	composing string
}

// NewComposer returns an empty Composer writing through sink.
func NewComposer(sink textsink.Sink) *Composer {
	return &Composer{sink: sink, ini: -1, med: -1, fin: -1}
}

// IsComposing reports whether any component slot is set.
func (c *Composer) IsComposing() bool {
	return c.ini >= 0 || c.med >= 0 || c.fin >= 0
}

// ComposingText returns the current in-progress text.
func (c *Composer) ComposingText() string {
	return c.composing
}

// InputLatinChar feeds one Latin key rune. Mapped runes mutate the
// component slots per the assembly rules; unmapped runes commit any
// in-progress syllable and pass through verbatim as finalized text.
func (c *Composer) InputLatinChar(ch rune) {
	jamo, ok := JamoForLatin(ch)
	if !ok {
		c.Commit()
		c.sink.CommitText(string(ch))
		return
	}
	if IsVowel(jamo) {
		c.inputVowel(jamo)
	} else {
		c.inputConsonant(jamo)
	}
	c.refresh()
}

// HandleSpaceOrEnter commits any in-progress syllable, then emits text
// verbatim as finalized output.
func (c *Composer) HandleSpaceOrEnter(text string) {
	if c.IsComposing() {
		c.commitSyllable()
	}
	c.sink.CommitText(text)
}

// Backspace removes the most specific present component: a compound final
// or medial is split and keeps its first part, a simple one is cleared, and
// a bare initial empties the automaton. Returns false when there is nothing
// to remove.
func (c *Composer) Backspace() bool {
	if !c.IsComposing() {
		return false
	}
	switch {
	case c.fin >= 0:
		if first, _, ok := SplitFinal(jongseong[c.fin]); ok {
			c.fin = jongseongIndex[first]
		} else {
			c.fin = -1
		}
	case c.med >= 0:
		if first, _, ok := SplitMedial(jungseong[c.med]); ok {
			c.med = jungseongIndex[first]
		} else {
			c.med = -1
		}
	default:
		c.ini = -1
	}
	c.refresh()
	return true
}

// Commit finalizes the in-progress syllable, if any.
func (c *Composer) Commit() {
	if c.IsComposing() {
		c.commitSyllable()
	}
}

// Reset empties the automaton without emitting anything. Hosts call it on
// session or focus changes, after the text field content is already gone.
func (c *Composer) Reset() {
	c.ini, c.med, c.fin = -1, -1, -1
	c.composing = ""
}

func (c *Composer) inputConsonant(j rune) {
	switch {
	case c.ini < 0:
		c.ini = choseongIndex[j]
	case c.med < 0:
		// Initial-only: a repeated consonant may merge into its tense form.
		if d, ok := CombineInitial(choseong[c.ini], j); ok {
			c.ini = choseongIndex[d]
		} else {
			c.commitSyllable()
			c.ini = choseongIndex[j]
		}
	case c.fin < 0:
		if idx, ok := jongseongIndex[j]; ok {
			c.fin = idx
		} else {
			// ㄸ, ㅃ and ㅉ cannot trail a syllable.
			c.commitSyllable()
			c.ini = choseongIndex[j]
		}
	default:
		if d, ok := CombineFinal(jongseong[c.fin], j); ok {
			c.fin = jongseongIndex[d]
		} else {
			c.commitSyllable()
			c.ini = choseongIndex[j]
		}
	}
}

func (c *Composer) inputVowel(j rune) {
	switch {
	case c.med < 0:
		if c.ini < 0 {
			c.ini = choseongIndex[nullInitial]
		}
		c.med = jungseongIndex[j]
	case c.fin < 0:
		if d, ok := CombineMedial(jungseong[c.med], j); ok {
			c.med = jungseongIndex[d]
		} else {
			c.commitSyllable()
			c.ini = choseongIndex[nullInitial]
			c.med = jungseongIndex[j]
		}
	default:
		// Re-syllabification: the trailing consonant migrates to lead a new
		// syllable. A compound final keeps its first part here and carries
		// its second part over.
		var carry rune
		if first, second, ok := SplitFinal(jongseong[c.fin]); ok {
			c.fin = jongseongIndex[first]
			carry = second
		} else {
			carry = jongseong[c.fin]
			c.fin = -1
		}
		c.commitSyllable()
		c.ini = choseongIndex[carry]
		c.med = jungseongIndex[j]
	}
}

// commitSyllable finalizes the current composed text and clears the slots.
func (c *Composer) commitSyllable() {
	c.sink.SetComposingText(c.composedText())
	c.sink.FinishComposingText()
	c.ini, c.med, c.fin = -1, -1, -1
	c.composing = ""
}

// refresh recomputes the composing cache and pushes it as in-progress text;
// an empty automaton explicitly clears the in-progress slot.
func (c *Composer) refresh() {
	c.composing = c.composedText()
	c.sink.SetComposingText(c.composing)
}

func (c *Composer) composedText() string {
	switch {
	case c.ini < 0:
		return ""
	case c.med < 0:
		// No syllable exists yet for a bare initial; show its
		// compatibility glyph.
		return string(choseong[c.ini])
	default:
		return string(SyllableBase + rune((c.ini*NumJungseong+c.med)*(NumJongseong+1)+c.fin+1))
	}
}
