// Package textsink defines the text-commit sink composed text is delivered
// through. The sink mirrors the composing/committed split of input-method
// text fields: in-progress text is replaceable until it is finalized,
// committed text is permanent.
package textsink

import "strings"

// Sink receives composed text from the input core.
//
// SetComposingText replaces any previous in-progress text, an empty string
// clears it. FinishComposingText converts the current in-progress text to
// finalized output, or does nothing if there is none. CommitText appends
// finalized text directly, bypassing the in-progress slot.
type Sink interface {
	SetComposingText(text string)
	FinishComposingText()
	CommitText(text string)
}

// Buffer is an in-memory Sink modeling a focused text field. The engine,
// the replay runner and the tests all use it as the commit target.
type Buffer struct {
	committed strings.Builder
	composing string
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetComposingText replaces the in-progress text.
func (b *Buffer) SetComposingText(text string) {
	b.composing = text
}

// FinishComposingText finalizes the in-progress text, if any.
func (b *Buffer) FinishComposingText() {
	if b.composing == "" {
		return
	}
	b.committed.WriteString(b.composing)
	b.composing = ""
}

// CommitText appends finalized text, leaving any in-progress text alone.
func (b *Buffer) CommitText(text string) {
	b.committed.WriteString(text)
}

// DeleteBackward removes the last committed rune. It is the host-side
// fallback for backspace when the composer is not composing. Returns false
// if there is nothing to delete.
func (b *Buffer) DeleteBackward() bool {
	s := b.committed.String()
	if s == "" {
		return false
	}
	r := []rune(s)
	b.committed.Reset()
	b.committed.WriteString(string(r[:len(r)-1]))
	return true
}

// Committed returns the finalized text.
func (b *Buffer) Committed() string {
	return b.committed.String()
}

// Composing returns the current in-progress text.
func (b *Buffer) Composing() string {
	return b.composing
}

// String returns the field content as a user would see it: finalized text
// followed by the in-progress text.
func (b *Buffer) String() string {
	return b.committed.String() + b.composing
}

// Reset clears both the finalized and in-progress text.
func (b *Buffer) Reset() {
	b.committed.Reset()
	b.composing = ""
}
