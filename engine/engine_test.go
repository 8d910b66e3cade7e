package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/engine"
	"github.com/sodam-ime/sodam/modifier"
	"github.com/sodam-ime/sodam/textsink"
)

type harness struct {
	clk *clock.Manual
	buf *textsink.Buffer
	eng *engine.Engine
}

func newHarness() *harness {
	clk := &clock.Manual{}
	clk.Set(10_000) // away from time zero, like a real monotonic clock
	buf := textsink.NewBuffer()
	return &harness{clk: clk, buf: buf, eng: engine.New(clk, buf, nil)}
}

// tap sends a press/release pair separated by dt milliseconds.
func (h *harness) tap(ev engine.KeyEvent, dt int64) {
	ev.Press = true
	h.eng.HandleKey(ev)
	h.clk.Advance(dt)
	ev.Press = false
	h.eng.HandleKey(ev)
}

func (h *harness) typeString(s string) {
	for _, ch := range s {
		h.tap(engine.RuneKey(ch, true), 20)
		h.clk.Advance(400) // keep taps out of each other's double-tap windows
	}
}

func TestLatinTyping(t *testing.T) {
	h := newHarness()
	h.typeString("hi")
	h.tap(engine.Key(engine.CodeSpace, true), 20)

	assert.Equal(t, "hi ", h.buf.Committed())
}

func TestHangulLayerLongPressToggle(t *testing.T) {
	h := newHarness()

	// A short trigger press does not toggle.
	h.tap(engine.Key(engine.CodeHangulToggle, true), modifier.LongPressThreshold-1)
	assert.False(t, h.eng.HangulActive())

	h.clk.Advance(1000)
	h.tap(engine.Key(engine.CodeHangulToggle, true), modifier.LongPressThreshold)
	require.True(t, h.eng.HangulActive())

	h.typeString("rk")
	assert.Equal(t, "가", h.buf.Composing())
	assert.Equal(t, "", h.buf.Committed())
}

func TestInstantToggleChord(t *testing.T) {
	h := newHarness()

	// Shift+trigger toggles immediately, without the long press.
	h.eng.HandleKey(engine.Key(engine.CodeShift, true))
	h.clk.Advance(30)
	h.tap(engine.Key(engine.CodeHangulToggle, true), 30)
	assert.True(t, h.eng.HangulActive())

	// The chord consumed the shift hold: its quick release must not arm a
	// one-shot that would uppercase the next key.
	h.clk.Advance(30)
	h.eng.HandleKey(engine.Key(engine.CodeShift, false))
	assert.False(t, h.eng.ShiftActive())

	h.clk.Advance(1000)
	h.typeString("rk")
	assert.Equal(t, "가", h.buf.Composing())
}

func TestLayerMutualExclusionCommitsComposer(t *testing.T) {
	h := newHarness()
	h.tap(engine.Key(engine.CodeHangulToggle, true), modifier.LongPressThreshold)
	h.typeString("rk")
	require.Equal(t, "가", h.buf.Composing())

	h.clk.Advance(1000)
	h.tap(engine.Key(engine.CodeCyrillicToggle, true), modifier.LongPressThreshold)

	assert.True(t, h.eng.CyrillicActive())
	assert.False(t, h.eng.HangulActive(), "activating one layer deactivates the other")
	assert.Equal(t, "가", h.buf.Committed(), "composing text is committed when its layer goes away")
	assert.Equal(t, "", h.buf.Composing())

	h.typeString("da")
	assert.Equal(t, "가да", h.buf.Committed())
}

func TestOneShotShift(t *testing.T) {
	h := newHarness()

	h.tap(engine.Key(engine.CodeShift, true), 50)
	h.clk.Advance(400)
	h.typeString("ab")

	assert.Equal(t, "Ab", h.buf.Committed(), "one-shot shift applies to exactly one key")
}

func TestHeldShift(t *testing.T) {
	h := newHarness()

	h.eng.HandleKey(engine.Key(engine.CodeShift, true))
	h.clk.Advance(30)
	h.typeString("ab")
	h.eng.HandleKey(engine.Key(engine.CodeShift, false))
	h.typeString("c")

	assert.Equal(t, "ABc", h.buf.Committed())
}

func TestCapsLock(t *testing.T) {
	h := newHarness()

	h.tap(engine.Key(engine.CodeCaps, true), 50)
	h.clk.Advance(1000)
	h.typeString("ab")
	assert.Equal(t, "AB", h.buf.Committed())

	// Shift inverts the lock.
	h.eng.HandleKey(engine.Key(engine.CodeShift, true))
	h.clk.Advance(30)
	h.typeString("c")
	h.eng.HandleKey(engine.Key(engine.CodeShift, false))
	assert.Equal(t, "ABc", h.buf.Committed())
}

func TestBackspaceRouting(t *testing.T) {
	h := newHarness()
	h.tap(engine.Key(engine.CodeHangulToggle, true), modifier.LongPressThreshold)
	h.clk.Advance(1000)
	h.typeString("rks")
	require.Equal(t, "간", h.buf.Composing())

	// While composing, backspace decomposes.
	h.tap(engine.Key(engine.CodeBackspace, true), 20)
	assert.Equal(t, "가", h.buf.Composing())

	// Exhaust the automaton, then backspace eats committed text.
	h.tap(engine.Key(engine.CodeBackspace, true), 20)
	h.tap(engine.Key(engine.CodeBackspace, true), 20)
	require.Equal(t, "", h.buf.String())

	h.typeString("rk")
	h.tap(engine.Key(engine.CodeSpace, true), 20)
	require.Equal(t, "가 ", h.buf.Committed())
	h.tap(engine.Key(engine.CodeBackspace, true), 20)
	assert.Equal(t, "가", h.buf.Committed())
}

func TestSpaceCommitsComposition(t *testing.T) {
	h := newHarness()
	h.tap(engine.Key(engine.CodeHangulToggle, true), modifier.LongPressThreshold)
	h.clk.Advance(1000)
	h.typeString("rk")

	h.tap(engine.Key(engine.CodeSpace, true), 20)
	assert.Equal(t, "가 ", h.buf.Committed())
	assert.Equal(t, "", h.buf.Composing())
}

func TestDualRoleKey(t *testing.T) {
	h := newHarness()

	// Plain tap: short key.
	h.tap(engine.Key(engine.CodeDual, true), 50)
	assert.Equal(t, ".", h.buf.Committed())

	// Long press: long key.
	h.clk.Advance(1000)
	h.tap(engine.Key(engine.CodeDual, true), modifier.LongPressThreshold)
	assert.Equal(t, ".…", h.buf.Committed())

	// Chorded with a character key: acts as a modifier, emits no key of
	// its own.
	h.clk.Advance(1000)
	h.eng.HandleKey(engine.Key(engine.CodeDual, true))
	h.clk.Advance(30)
	h.tap(engine.RuneKey('a', true), 20)
	h.clk.Advance(30)
	h.eng.HandleKey(engine.Key(engine.CodeDual, false))

	assert.Equal(t, ".…a", h.buf.Committed())
}

func TestToggleLayerHostSide(t *testing.T) {
	h := newHarness()

	h.eng.ToggleLayer(modifier.LayerHangul)
	assert.True(t, h.eng.HangulActive())

	h.typeString("rk")
	h.eng.ToggleLayer(modifier.LayerCyrillic)
	assert.False(t, h.eng.HangulActive())
	assert.True(t, h.eng.CyrillicActive())
	assert.Equal(t, "가", h.buf.Committed())

	h.eng.ToggleLayer(modifier.LayerCyrillic)
	assert.False(t, h.eng.CyrillicActive())
}

func TestReset(t *testing.T) {
	h := newHarness()
	h.tap(engine.Key(engine.CodeHangulToggle, true), modifier.LongPressThreshold)
	h.typeString("rk")
	h.eng.HandleKey(engine.Key(engine.CodeShift, true))

	h.eng.Reset()
	assert.False(t, h.eng.HangulActive())
	assert.False(t, h.eng.CyrillicActive())
	assert.False(t, h.eng.ShiftActive())

	// The buffer belongs to the text field and survives.
	assert.Equal(t, "가", h.buf.String())
}
