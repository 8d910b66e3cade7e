//go:build linux

// Package evdev reads raw key events from a Linux input device and
// translates them into engine key events.
package evdev

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/sodam-ime/sodam/engine"
)

const (
	evKey = 0x01

	// eviocgrab is EVIOCGRAB from <linux/input.h>, _IOW('E', 0x90, int).
	// golang.org/x/sys/unix excludes the EVIOC* ioctls from its generated
	// constants, so it is spelled out here.
	eviocgrab = 0x40044590

	valueUp     = 0
	valueDown   = 1
	valueRepeat = 2
)

// inputEvent mirrors struct input_event from <linux/input.h> on 64-bit.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

const eventSize = int(unsafe.Sizeof(inputEvent{}))

// Event is a translated key event with the kernel timestamp in milliseconds.
// Quit is set instead of Key when the session stop key (Escape) goes down.
type Event struct {
	AtMillis int64
	Key      engine.KeyEvent
	Quit     bool
}

// Source reads events from an evdev character device such as
// /dev/input/event3.
type Source struct {
	fd      int
	path    string
	grabbed bool
}

// Open opens the device read-only. The device is not grabbed until Grab is
// called.
func Open(path string) (*Source, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Source{fd: fd, path: path}, nil
}

// Grab takes exclusive hold of the device so events stop reaching the rest
// of the system.
func (s *Source) Grab() error {
	if err := unix.IoctlSetInt(s.fd, eviocgrab, 1); err != nil {
		return fmt.Errorf("grab %s: %w", s.path, err)
	}
	s.grabbed = true
	return nil
}

// Release gives the device back to the system.
func (s *Source) Release() error {
	if !s.grabbed {
		return nil
	}
	s.grabbed = false
	if err := unix.IoctlSetInt(s.fd, eviocgrab, 0); err != nil {
		return fmt.Errorf("release %s: %w", s.path, err)
	}
	return nil
}

// Close releases and closes the device.
func (s *Source) Close() error {
	_ = s.Release()
	return unix.Close(s.fd)
}

// Poll waits up to timeoutMillis for the device to become readable. A
// negative timeout blocks indefinitely.
func (s *Source) Poll(timeoutMillis int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, timeoutMillis)
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("poll %s: %w", s.path, err)
	}
	return n > 0, nil
}

// Read drains one kernel read worth of events and returns the translated key
// events. Repeats and untranslatable codes are dropped.
func (s *Source) Read() ([]Event, error) {
	buf := make([]byte, eventSize*64)
	n, err := unix.Read(s.fd, buf)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if n == 0 {
		return nil, io.EOF
	}

	var out []Event
	for off := 0; off+eventSize <= n; off += eventSize {
		ev := decodeEvent(buf[off : off+eventSize])
		if ev.Type != evKey || ev.Value == valueRepeat {
			continue
		}
		at := ev.Sec*1000 + ev.Usec/1000
		if ev.Code == keyEsc {
			if ev.Value == valueDown {
				out = append(out, Event{AtMillis: at, Quit: true})
			}
			continue
		}
		key, ok := translate(ev.Code, ev.Value == valueDown)
		if !ok {
			continue
		}
		out = append(out, Event{AtMillis: at, Key: key})
	}
	return out, nil
}

func decodeEvent(b []byte) inputEvent {
	return inputEvent{
		Sec:   int64(binary.LittleEndian.Uint64(b[0:8])),
		Usec:  int64(binary.LittleEndian.Uint64(b[8:16])),
		Type:  binary.LittleEndian.Uint16(b[16:18]),
		Code:  binary.LittleEndian.Uint16(b[18:20]),
		Value: int32(binary.LittleEndian.Uint32(b[20:24])),
	}
}
