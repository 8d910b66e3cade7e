package modifier

import "github.com/sodam-ime/sodam/clock"

// SimpleModifier is the two-state variant: hold and lock only, no one-shot.
// Every press toggles the lock; a quick tap-release within
// SimpleLockThreshold preserves the toggle as a lock, while a slow release
// clears it again, degrading the press to a plain momentary hold.
type SimpleModifier struct {
	clk clock.Clock

	held     bool
	locked   bool
	lastDown int64
}

// NewSimple returns an inactive SimpleModifier reading time from clk.
func NewSimple(clk clock.Clock) *SimpleModifier {
	return &SimpleModifier{clk: clk, lastDown: lastDownSeed}
}

// OnKeyDown toggles the lock and records the press time.
func (m *SimpleModifier) OnKeyDown() {
	m.held = true
	m.locked = !m.locked
	m.lastDown = m.clk.NowMillis()
}

// OnKeyUp ends the hold. If the key was held longer than
// SimpleLockThreshold the lock is cleared regardless of its value.
func (m *SimpleModifier) OnKeyUp() {
	if m.clk.NowMillis()-m.lastDown > SimpleLockThreshold {
		m.locked = false
	}
	m.held = false
}

// Get reports whether the modifier currently applies.
func (m *SimpleModifier) Get() bool {
	return m.locked || m.held
}

// IsLocked reports whether the modifier is locked.
func (m *SimpleModifier) IsLocked() bool {
	return m.locked
}

// IsHeld reports whether the key is physically down.
func (m *SimpleModifier) IsHeld() bool {
	return m.held
}

// Reset returns the modifier to its initial inactive state.
func (m *SimpleModifier) Reset() {
	*m = SimpleModifier{clk: m.clk, lastDown: lastDownSeed}
}
