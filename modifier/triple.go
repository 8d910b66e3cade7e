package modifier

import "github.com/sodam-ime/sodam/clock"

// Key identifies a virtual key a TripleModifier can emit. The zero value
// means "no key".
type Key string

// TripleModifier is a Modifier for a key with three roles: ordinary timed
// modifier, short-tap key, or long-press key, plus a secondary "mod key"
// emission mode for combos. The down/up timing algorithm is identical to
// Modifier; on top of it the type keeps per-press latches that are cleared
// at the start of the next press (skip-key-up) or at the end of the current
// one (long-press, mod-key mode), so a latch can never leak into an
// unrelated key cycle.
//
// The latches are individually correct but deliberately not ranked; how
// mod-key mode, long press and the short key combine into an emitted key is
// the host's emission policy.
type TripleModifier struct {
	Modifier

	shortKey Key
	longKey  Key
	modKey   Key

	longPress  bool
	modKeyMode bool
	skipKeyUp  bool
}

// NewTriple returns an inactive TripleModifier. shortKey is emitted for a
// plain tap, longKey for a long press; modKey may be empty, in which case
// mod-key mode can never activate.
func NewTriple(clk clock.Clock, shortKey, longKey, modKey Key) *TripleModifier {
	return &TripleModifier{
		Modifier: Modifier{clk: clk, lastDown: lastDownSeed},
		shortKey: shortKey,
		longKey:  longKey,
		modKey:   modKey,
	}
}

// OnKeyDown starts a new key cycle: the skip-key-up latch from the previous
// cycle is dropped before the base algorithm runs.
func (m *TripleModifier) OnKeyDown() {
	m.skipKeyUp = false
	m.Modifier.OnKeyDown()
}

// OnKeyUp ends the cycle and clears the long-press and mod-key latches.
// Hosts must query GetKey/GetModKey before calling OnKeyUp.
func (m *TripleModifier) OnKeyUp() {
	m.Modifier.OnKeyUp()
	m.longPress = false
	m.modKeyMode = false
}

// ActivateLongPress marks the current press as a long press.
func (m *TripleModifier) ActivateLongPress() {
	m.longPress = true
}

// ActivateModKey enters mod-key mode for the current press. It has no
// effect when no mod key is configured.
func (m *TripleModifier) ActivateModKey() {
	if m.modKey != "" {
		m.modKeyMode = true
	}
}

// ActivateSkipKeyUp marks the upcoming release as consumed: state is still
// updated on release, but the host must not emit text for it.
func (m *TripleModifier) ActivateSkipKeyUp() {
	m.skipKeyUp = true
}

// SkipKeyUp reports whether the upcoming release is to be ignored for
// emission. The latch resets on the next OnKeyDown.
func (m *TripleModifier) SkipKeyUp() bool {
	return m.skipKeyUp
}

// GetKey returns the long-press key while the long-press latch is set, the
// short-press key otherwise.
func (m *TripleModifier) GetKey() Key {
	if m.longPress {
		return m.longKey
	}
	return m.shortKey
}

// GetModKey returns the mod key while mod-key mode is active, and the empty
// Key otherwise.
func (m *TripleModifier) GetModKey() Key {
	if m.modKeyMode {
		return m.modKey
	}
	return ""
}

// Reset returns the modifier to its initial inactive state, keeping the
// configured key identifiers.
func (m *TripleModifier) Reset() {
	m.Modifier.Reset()
	m.longPress = false
	m.modKeyMode = false
	m.skipKeyUp = false
}
