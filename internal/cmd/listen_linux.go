//go:build linux

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/engine"
	"github.com/sodam-ime/sodam/internal/evdev"
	"github.com/sodam-ime/sodam/internal/log"
	"github.com/sodam-ime/sodam/textsink"
)

// Run is called by Kong when the listen command is executed.
func (l *Listen) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := evdev.Open(l.Device)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	if l.Grab {
		if err := src.Grab(); err != nil {
			return err
		}
		logger.Info("grabbed device", "device", l.Device)
	}

	// Kernel timestamps drive the clock so double-tap and long-press
	// windows are measured against the actual press times, not against
	// whenever this process got scheduled.
	clk := &clock.Manual{}
	buf := textsink.NewBuffer()
	eng := engine.New(clk, buf, logger)

	logger.Info("listening", "device", l.Device, "grab", l.Grab)
	fmt.Println("Press Esc on the device to stop.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ready, err := src.Poll(250)
		if err != nil {
			return err
		}
		if !ready {
			continue
		}

		evs, err := src.Read()
		if err != nil {
			return err
		}
		for _, ev := range evs {
			if ev.Quit {
				logger.Info("stop key pressed")
				return nil
			}
			clk.Set(ev.AtMillis)
			events.Log(ev.AtMillis, eventName(ev.Key), ev.Key.Press)
			eng.HandleKey(ev.Key)
		}
		fmt.Printf("\r\x1b[K%s%s", buf.Committed(), buf.Composing())
	}
}
