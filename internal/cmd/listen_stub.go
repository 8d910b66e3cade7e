//go:build !linux

package cmd

import (
	"errors"
	"log/slog"

	"github.com/sodam-ime/sodam/internal/log"
)

// Run reports that device listening needs evdev.
func (l *Listen) Run(logger *slog.Logger, events log.EventLogger) error {
	return errors.New("listen requires Linux evdev input devices")
}
