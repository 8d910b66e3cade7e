// Package modifier implements the activation state machines for virtual
// modifier keys: hold-to-activate, one-shot-until-next-key and
// double-press-to-lock semantics (Modifier), a two-state hold/lock variant
// (SimpleModifier), a triple-role key that can act as modifier, short-tap
// key or long-press key (TripleModifier), and a long-press layer toggle
// (LayerToggle).
//
// Every type is a single-threaded, synchronous state machine. The host
// serializes all key-down/key-up calls in event order; nothing here is safe
// for concurrent use. Time is read exclusively through the injected
// clock.Clock, and thresholds are evaluated retrospectively at the next
// event, never via scheduled timers.
package modifier
