// Package clock provides the monotonic millisecond time source the input
// state machines read. Lock, one-shot and long-press detection all compare
// sub-threshold gaps between events, so the clock is injected rather than
// read from a global: hosts pass System(), tests pass a Manual.
package clock

import "time"

// Clock returns the current monotonic time in milliseconds. Implementations
// must be monotonic; wall-clock jumps would corrupt threshold detection.
type Clock interface {
	NowMillis() int64
}

// System returns a Clock backed by the runtime monotonic clock. Timestamps
// are relative to the moment System was called.
func System() Clock {
	return systemClock{start: time.Now()}
}

type systemClock struct {
	start time.Time
}

func (c systemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual is a hand-advanced Clock for deterministic tests and replay runs.
// The zero value starts at 0ms. Manual never moves backwards.
type Manual struct {
	now int64
}

// NowMillis returns the current manual time.
func (m *Manual) NowMillis() int64 {
	return m.now
}

// Advance moves the clock forward by d milliseconds. Negative values are
// ignored.
func (m *Manual) Advance(d int64) {
	if d > 0 {
		m.now += d
	}
}

// Set jumps the clock to an absolute millisecond timestamp. Timestamps in
// the past are ignored.
func (m *Manual) Set(t int64) {
	if t > m.now {
		m.now = t
	}
}
