package modifier

import "github.com/sodam-ime/sodam/clock"

// Layer identifies which alternate script layer a LayerToggle gates.
type Layer string

// The layers this engine ships with. LayerToggle itself treats the value as
// an opaque identity.
const (
	LayerHangul   Layer = "hangul"
	LayerCyrillic Layer = "cyrillic"
)

// LayerToggle switches an alternate script layer on and off. Holding the
// trigger key for at least LongPressThreshold and releasing it flips the
// layer; InstantToggle flips it immediately for combo-triggered activation,
// swallowing the in-flight release so it cannot toggle a second time.
//
// Several LayerToggles may coexist, one per layer. The type imposes no
// mutual exclusion between layers; that is host policy.
type LayerToggle struct {
	clk   clock.Clock
	layer Layer

	active             bool
	triggerPressed     bool
	pressStart         int64
	suppressNextToggle bool
	justToggled        bool
}

// NewLayerToggle returns an inactive toggle for the given layer.
func NewLayerToggle(clk clock.Clock, layer Layer) *LayerToggle {
	return &LayerToggle{clk: clk, layer: layer}
}

// Layer returns the layer identity this toggle gates.
func (t *LayerToggle) Layer() Layer {
	return t.layer
}

// OnTriggerDown records the start of a trigger press.
func (t *LayerToggle) OnTriggerDown() {
	t.pressStart = t.clk.NowMillis()
	t.triggerPressed = true
}

// OnTriggerUp ends the trigger press. If a toggle already happened through
// InstantToggle the release is swallowed; otherwise a press held for at
// least LongPressThreshold flips the layer.
func (t *LayerToggle) OnTriggerUp() {
	if t.suppressNextToggle {
		t.suppressNextToggle = false
		t.triggerPressed = false
		return
	}
	if t.clk.NowMillis()-t.pressStart >= LongPressThreshold {
		t.active = !t.active
		t.justToggled = true
	}
	t.triggerPressed = false
}

// InstantToggle flips the layer immediately, for combos of the trigger key
// with another key. The physical release already in flight is marked so it
// does not toggle again.
func (t *LayerToggle) InstantToggle() {
	t.active = !t.active
	t.justToggled = true
	t.suppressNextToggle = true
}

// WasJustToggled reports whether the layer flipped since the last call and
// clears the latch. The read and the clear are a single transition: a second
// call returns false until the next toggle.
func (t *LayerToggle) WasJustToggled() bool {
	v := t.justToggled
	t.justToggled = false
	return v
}

// Active reports whether the layer is on.
func (t *LayerToggle) Active() bool {
	return t.active
}

// IsTriggerPressed reports whether the trigger key is physically down.
func (t *LayerToggle) IsTriggerPressed() bool {
	return t.triggerPressed
}

// Activate forces the layer on without touching timing state.
func (t *LayerToggle) Activate() {
	t.active = true
}

// Deactivate forces the layer off without touching timing state.
func (t *LayerToggle) Deactivate() {
	t.active = false
}

// Reset returns every field to its initial value.
func (t *LayerToggle) Reset() {
	*t = LayerToggle{clk: t.clk, layer: t.layer}
}
