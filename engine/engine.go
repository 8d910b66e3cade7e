// Package engine routes physical key events to the modifier state machines
// and the Hangul composer, and delivers the resulting text to a sink
// buffer. The routing policies that the core components deliberately leave
// open — mutual exclusion of layers, consumption of one-shot modifiers,
// what a chorded dual-role key emits — live here.
package engine

import (
	"io"
	"log/slog"
	"unicode"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/hangul"
	"github.com/sodam-ime/sodam/layout"
	"github.com/sodam-ime/sodam/modifier"
	"github.com/sodam-ime/sodam/textsink"
)

// Engine owns one instance of every input state machine for a keyboard
// session. All calls must arrive on a single goroutine in event order.
type Engine struct {
	log *slog.Logger
	clk clock.Clock
	buf *textsink.Buffer

	shift    *modifier.Modifier
	caps     *modifier.SimpleModifier
	dual     *modifier.TripleModifier
	hangul   *modifier.LayerToggle
	cyrillic *modifier.LayerToggle
	composer *hangul.Composer

	dualDownAt int64
}

// Dual-role key assignment: tap types a period, a long press types an
// ellipsis, and chording it with a character key turns it into the "sym"
// modifier for that chord.
const (
	dualShortKey modifier.Key = "."
	dualLongKey  modifier.Key = "…"
	dualModKey   modifier.Key = "sym"
)

// New returns an Engine for one keyboard session, writing text into buf.
// A nil logger disables logging.
func New(clk clock.Clock, buf *textsink.Buffer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	return &Engine{
		log:      logger,
		clk:      clk,
		buf:      buf,
		shift:    modifier.New(clk),
		caps:     modifier.NewSimple(clk),
		dual:     modifier.NewTriple(clk, dualShortKey, dualLongKey, dualModKey),
		hangul:   modifier.NewLayerToggle(clk, modifier.LayerHangul),
		cyrillic: modifier.NewLayerToggle(clk, modifier.LayerCyrillic),
		composer: hangul.NewComposer(buf),
	}
}

// Buffer returns the text field model this engine writes into.
func (e *Engine) Buffer() *textsink.Buffer {
	return e.buf
}

// HangulActive reports whether the Hangul layer is on.
func (e *Engine) HangulActive() bool {
	return e.hangul.Active()
}

// CyrillicActive reports whether the Cyrillic layer is on.
func (e *Engine) CyrillicActive() bool {
	return e.cyrillic.Active()
}

// ShiftActive reports whether shift currently applies.
func (e *Engine) ShiftActive() bool {
	return e.shift.Get()
}

// HandleKey routes one key transition.
func (e *Engine) HandleKey(ev KeyEvent) {
	e.log.Debug("key event", "code", ev.Code.String(), "rune", string(ev.Rune), "press", ev.Press)

	switch ev.Code {
	case CodeShift:
		if ev.Press {
			e.shift.OnKeyDown()
		} else {
			e.shift.OnKeyUp()
		}
	case CodeCaps:
		if ev.Press {
			e.caps.OnKeyDown()
		} else {
			e.caps.OnKeyUp()
		}
	case CodeDual:
		e.handleDual(ev.Press)
	case CodeHangulToggle:
		e.handleTrigger(e.hangul, ev.Press)
	case CodeCyrillicToggle:
		e.handleTrigger(e.cyrillic, ev.Press)
	case CodeBackspace:
		if ev.Press {
			e.handleBackspace()
		}
	case CodeSpace:
		if ev.Press {
			e.emitBreak(" ")
		}
	case CodeEnter:
		if ev.Press {
			e.emitBreak("\n")
		}
	case CodeRune:
		if ev.Press {
			e.handleRune(ev.Rune)
		}
	}
}

// ToggleLayer flips a layer from the host side (for UI buttons and demo
// key chords that bypass the trigger keys). Mutual exclusion and composer
// commit semantics match trigger-driven toggling.
func (e *Engine) ToggleLayer(l modifier.Layer) {
	t := e.toggleFor(l)
	if t == nil {
		return
	}
	if t.Active() {
		t.Deactivate()
	} else {
		t.Activate()
		e.counterpart(t).Deactivate()
	}
	e.afterLayerChange(t)
}

// Reset returns every state machine to its initial state, for session and
// focus changes. The text buffer is owned by the field and left alone.
func (e *Engine) Reset() {
	e.shift.Reset()
	e.caps.Reset()
	e.dual.Reset()
	e.hangul.Reset()
	e.cyrillic.Reset()
	e.composer.Reset()
	e.dualDownAt = 0
}

func (e *Engine) handleTrigger(t *modifier.LayerToggle, press bool) {
	if press {
		t.OnTriggerDown()
		// Shift+trigger toggles instantly; the chord consumes the shift
		// hold so its release cannot arm a one-shot.
		if e.shift.IsHeld() {
			t.InstantToggle()
			e.shift.SuppressNextOneShotOnce()
		}
	} else {
		t.OnTriggerUp()
	}
	if t.WasJustToggled() {
		if t.Active() {
			e.counterpart(t).Deactivate()
		}
		e.afterLayerChange(t)
	}
}

func (e *Engine) afterLayerChange(t *modifier.LayerToggle) {
	// Composing text must not dangle once the Hangul layer is gone.
	if !e.hangul.Active() {
		e.composer.Commit()
	}
	e.log.Debug("layer toggled", "layer", string(t.Layer()), "active", t.Active())
}

func (e *Engine) handleRune(ch rune) {
	if e.dual.IsHeld() {
		// Chorded with the dual-role key: it acts as the sym modifier for
		// this press and must not emit its own key on release.
		e.dual.ActivateModKey()
		e.dual.ActivateSkipKeyUp()
		e.log.Debug("dual chord", "mod", string(e.dual.GetModKey()), "rune", string(ch))
	}
	e.emitRune(e.applyCase(ch))
}

func (e *Engine) applyCase(ch rune) rune {
	upper := false
	if e.shift.Get() {
		upper = true
		if e.shift.IsOneShot() {
			e.shift.NextDidConsume()
		}
	}
	if e.caps.Get() {
		upper = !upper
	}
	if upper {
		return unicode.ToUpper(ch)
	}
	return ch
}

func (e *Engine) emitRune(ch rune) {
	switch {
	case e.hangul.Active():
		e.composer.InputLatinChar(ch)
	case e.cyrillic.Active():
		e.buf.CommitText(string(layout.Cyrillic(ch)))
	default:
		e.buf.CommitText(string(ch))
	}
}

func (e *Engine) emitBreak(text string) {
	if e.composer.IsComposing() {
		e.composer.HandleSpaceOrEnter(text)
		return
	}
	e.buf.CommitText(text)
}

func (e *Engine) handleBackspace() {
	if e.composer.Backspace() {
		return
	}
	e.buf.DeleteBackward()
}

func (e *Engine) handleDual(press bool) {
	now := e.clk.NowMillis()
	if press {
		e.dual.OnKeyDown()
		e.dualDownAt = now
		return
	}
	if now-e.dualDownAt >= modifier.LongPressThreshold {
		e.dual.ActivateLongPress()
	}
	// Emission policy for the triple-role latches: mod-key mode (or an
	// explicit skip) wins and emits nothing, the long-press key beats the
	// short key.
	skip := e.dual.SkipKeyUp() || e.dual.GetModKey() != ""
	key := e.dual.GetKey()
	e.dual.OnKeyUp()
	if skip {
		return
	}
	for _, ch := range string(key) {
		e.emitRune(ch)
	}
}

func (e *Engine) toggleFor(l modifier.Layer) *modifier.LayerToggle {
	switch l {
	case modifier.LayerHangul:
		return e.hangul
	case modifier.LayerCyrillic:
		return e.cyrillic
	}
	return nil
}

func (e *Engine) counterpart(t *modifier.LayerToggle) *modifier.LayerToggle {
	if t == e.hangul {
		return e.cyrillic
	}
	return e.hangul
}
