package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/modifier"
)

func newTriple(clk clock.Clock) *modifier.TripleModifier {
	return modifier.NewTriple(clk, ".", "…", "sym")
}

func TestTripleShortAndLongKey(t *testing.T) {
	clk := &clock.Manual{}
	m := newTriple(clk)

	assert.Equal(t, modifier.Key("."), m.GetKey())

	m.OnKeyDown()
	m.ActivateLongPress()
	assert.Equal(t, modifier.Key("…"), m.GetKey())

	m.OnKeyUp()
	assert.Equal(t, modifier.Key("."), m.GetKey(), "long-press latch clears on release")
}

func TestTripleModKeyMode(t *testing.T) {
	clk := &clock.Manual{}
	m := newTriple(clk)

	assert.Equal(t, modifier.Key(""), m.GetModKey())

	m.OnKeyDown()
	m.ActivateModKey()
	assert.Equal(t, modifier.Key("sym"), m.GetModKey())

	m.OnKeyUp()
	assert.Equal(t, modifier.Key(""), m.GetModKey(), "mod-key latch clears on release")
}

func TestTripleModKeyRequiresIdentifier(t *testing.T) {
	clk := &clock.Manual{}
	m := modifier.NewTriple(clk, ".", "…", "")

	m.OnKeyDown()
	m.ActivateModKey()
	assert.Equal(t, modifier.Key(""), m.GetModKey(), "mod-key mode needs a configured mod key")
}

func TestTripleSkipKeyUp(t *testing.T) {
	clk := &clock.Manual{}
	m := newTriple(clk)

	m.OnKeyDown()
	m.ActivateSkipKeyUp()
	assert.True(t, m.SkipKeyUp())

	m.OnKeyUp()
	assert.True(t, m.SkipKeyUp(), "skip latch survives the release it applies to")

	m.OnKeyDown()
	assert.False(t, m.SkipKeyUp(), "skip latch resets at the next press")
	m.OnKeyUp()
}

func TestTripleBaseTimingIntact(t *testing.T) {
	clk := &clock.Manual{}
	m := newTriple(clk)

	// The embedded timing algorithm is unchanged: quick double press locks.
	clk.Advance(1000)
	m.OnKeyDown()
	clk.Advance(50)
	m.OnKeyUp()
	clk.Advance(100)
	m.OnKeyDown()
	assert.True(t, m.IsLocked())
	m.OnKeyUp()
	assert.True(t, m.Get())
}

func TestTripleReset(t *testing.T) {
	clk := &clock.Manual{}
	m := newTriple(clk)

	m.OnKeyDown()
	m.ActivateLongPress()
	m.ActivateModKey()
	m.ActivateSkipKeyUp()

	m.Reset()
	assert.False(t, m.Get())
	assert.False(t, m.SkipKeyUp())
	assert.Equal(t, modifier.Key("."), m.GetKey(), "key identifiers survive a reset")
	assert.Equal(t, modifier.Key(""), m.GetModKey())
}
