package log

import (
	"fmt"
	"io"
	"sync"
)

// EventLogger writes a one-line trace per routed key event, keyed by the
// event-time millisecond timestamp of the driving clock.
type EventLogger interface {
	Log(at int64, name string, press bool)
}

// eventLogger implements EventLogger with thread-safe writes.
type eventLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewEventLogger creates a new EventLogger. If writer is nil, returns a
// no-op logger.
func NewEventLogger(w io.Writer) EventLogger {
	return &eventLogger{w: w}
}

// Log emits one line per key transition, e.g. "00010250 down shift".
func (l *eventLogger) Log(at int64, name string, press bool) {
	if l.w == nil {
		return
	}
	dir := "up  "
	if press {
		dir = "down"
	}
	line := fmt.Sprintf("%08d %s %s\n", at, dir, name)

	l.mu.Lock()
	_, _ = l.w.Write([]byte(line))
	l.mu.Unlock()
}
