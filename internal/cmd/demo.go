package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/engine"
	"github.com/sodam-ime/sodam/internal/log"
	"github.com/sodam-ime/sodam/modifier"
	"github.com/sodam-ime/sodam/textsink"
)

// Demo types interactively in the terminal. The terminal is put into raw
// mode so every keystroke reaches the engine immediately; Tab flips the
// Hangul layer, Ctrl+T the Cyrillic layer, and Esc or Ctrl+C exits.
type Demo struct {
	Hangul bool `help:"Start with the Hangul layer active" default:"true" negatable:""`
}

// Run is called by Kong when the demo command is executed.
func (d *Demo) Run(logger *slog.Logger, events log.EventLogger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("demo needs an interactive terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	clk := clock.System()
	buf := textsink.NewBuffer()
	eng := engine.New(clk, buf, logger)
	if d.Hangul {
		eng.ToggleLayer(modifier.LayerHangul)
	}

	fmt.Print("Tab: Hangul layer  Ctrl+T: Cyrillic layer  Esc: quit\r\n")
	d.redraw(eng, buf)

	in := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(in); err != nil {
			return err
		}
		b := in[0]
		switch {
		case b == 0x03 || b == 0x1b: // Ctrl+C, Esc
			fmt.Print("\r\n")
			return nil
		case b == '\t':
			eng.ToggleLayer(modifier.LayerHangul)
		case b == 0x14: // Ctrl+T
			eng.ToggleLayer(modifier.LayerCyrillic)
		case b == '\r' || b == '\n':
			d.tap(eng, clk, events, engine.Key(engine.CodeEnter, true))
		case b == 0x7f || b == 0x08:
			d.tap(eng, clk, events, engine.Key(engine.CodeBackspace, true))
		case b == ' ':
			d.tap(eng, clk, events, engine.Key(engine.CodeSpace, true))
		case b >= 0x20 && b < 0x7f:
			d.tap(eng, clk, events, engine.RuneKey(rune(b), true))
		}
		d.redraw(eng, buf)
	}
}

// tap feeds a key down immediately followed by its release. A byte stream
// carries no key-up information, so every keystroke is a short tap.
func (d *Demo) tap(eng *engine.Engine, clk clock.Clock, events log.EventLogger, ev engine.KeyEvent) {
	events.Log(clk.NowMillis(), eventName(ev), true)
	eng.HandleKey(ev)
	ev.Press = false
	events.Log(clk.NowMillis(), eventName(ev), false)
	eng.HandleKey(ev)
}

// eventName names a key event for the trace log: the rune itself for
// character keys, the code name otherwise.
func eventName(ev engine.KeyEvent) string {
	if ev.Code == engine.CodeRune {
		return string(ev.Rune)
	}
	return ev.Code.String()
}

func (d *Demo) redraw(eng *engine.Engine, buf *textsink.Buffer) {
	layer := "latin"
	if eng.HangulActive() {
		layer = "hangul"
	} else if eng.CyrillicActive() {
		layer = "cyrillic"
	}
	fmt.Printf("\r\x1b[K[%s] %s", layer, buf.Committed())
	if c := buf.Composing(); c != "" {
		fmt.Printf("\x1b[4m%s\x1b[0m", c)
	}
}
