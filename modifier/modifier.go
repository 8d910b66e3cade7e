package modifier

import (
	"math"

	"github.com/sodam-ime/sodam/clock"
)

// Timing thresholds in milliseconds.
const (
	// LockThreshold is the maximum gap between two key-down events for the
	// pair to count as a double press that toggles the lock.
	LockThreshold = 250

	// NextThreshold is the maximum hold duration that still arms a one-shot
	// on release.
	NextThreshold = 350

	// SimpleLockThreshold is the maximum press duration that preserves a
	// SimpleModifier toggle as a lock on release.
	SimpleLockThreshold = 350

	// LongPressThreshold is the minimum press duration for a LayerToggle
	// trigger to flip the layer on release.
	LongPressThreshold = 500
)

// lastDownSeed is far enough in the past that the first press of a fresh or
// reset state machine can never read as a double tap.
const lastDownSeed = math.MinInt64 / 2

// Modifier is a virtual modifier key with three activation semantics:
// active while held, locked by a quick double press until the next double
// press, or armed as a one-shot by a quick tap so that it applies to exactly
// one subsequent keypress.
//
// The one-shot flag is only ever set on release; it is never true while the
// key is held.
type Modifier struct {
	clk clock.Clock

	held                bool
	locked              bool
	oneShot             bool
	suppressNextOneShot bool
	lastDown            int64
}

// New returns an inactive Modifier reading time from clk.
func New(clk clock.Clock) *Modifier {
	return &Modifier{clk: clk, lastDown: lastDownSeed}
}

// OnKeyDown records a physical press. A press within LockThreshold of the
// previous press toggles the lock and forbids the matching release from also
// arming a one-shot. A slower press clears the lock; if the modifier was
// already locked or one-shot armed, the release must not re-arm a stale
// one-shot.
func (m *Modifier) OnKeyDown() {
	now := m.clk.NowMillis()
	m.held = true
	if now-m.lastDown < LockThreshold {
		m.locked = !m.locked
		m.suppressNextOneShot = true
	} else {
		m.suppressNextOneShot = m.locked || m.oneShot
		m.locked = false
	}
	m.oneShot = false
	m.lastDown = now
}

// OnKeyUp records a physical release. A release within NextThreshold of the
// press arms the one-shot, unless the press locked the modifier or the
// one-shot was suppressed.
func (m *Modifier) OnKeyUp() {
	now := m.clk.NowMillis()
	m.oneShot = !m.locked && now-m.lastDown < NextThreshold && !m.suppressNextOneShot
	m.suppressNextOneShot = false
	m.held = false
}

// Get reports whether the modifier currently applies: locked, held, or
// armed for the next keypress.
func (m *Modifier) Get() bool {
	return m.locked || m.held || m.oneShot
}

// IsLocked reports whether the modifier is locked.
func (m *Modifier) IsLocked() bool {
	return m.locked
}

// IsHeld reports whether the key is physically down.
func (m *Modifier) IsHeld() bool {
	return m.held
}

// IsOneShot reports whether the modifier is armed for exactly one
// subsequent keypress.
func (m *Modifier) IsOneShot() bool {
	return m.oneShot
}

// SuppressNextOneShotOnce cancels the one-shot that the upcoming release
// would otherwise arm, leaving all other state untouched. Used when another
// key consumes the modifier as part of a combo while it is still held.
func (m *Modifier) SuppressNextOneShotOnce() {
	m.suppressNextOneShot = true
}

// ActivateForNext force-arms the one-shot, as if the key had just been
// tapped.
func (m *Modifier) ActivateForNext() {
	m.oneShot = true
}

// NextDidConsume clears the one-shot after the following keypress consumed
// it. This is the read side of the one-shot contract: the host must call it
// exactly once per consumed one-shot.
func (m *Modifier) NextDidConsume() {
	m.oneShot = false
}

// Reset returns the modifier to its initial inactive state.
func (m *Modifier) Reset() {
	*m = Modifier{clk: m.clk, lastDown: lastDownSeed}
}
