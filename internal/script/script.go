// Package script loads and replays recorded key sequences against the
// engine, using a manual clock so timing-sensitive behavior (double-tap
// locks, long presses) is reproduced exactly.
package script

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/engine"
	"github.com/sodam-ime/sodam/textsink"
)

// Step is a single timed input. Either Press (true/false for key down/up)
// is given, or Tap is set to expand into a down immediately followed by
// an up at the same timestamp.
type Step struct {
	At    int64  `yaml:"at"`
	Key   string `yaml:"key"`
	Press *bool  `yaml:"press,omitempty"`
	Tap   bool   `yaml:"tap,omitempty"`
}

// Want describes the expected buffer state after the script has run.
type Want struct {
	Committed string `yaml:"committed"`
	Composing string `yaml:"composing"`
}

// Script is a named replayable key sequence.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
	Want  *Want  `yaml:"want,omitempty"`
}

// Result holds the buffer state after replaying a script.
type Result struct {
	Committed string
	Composing string
}

// Load reads a script from a YAML file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a script from YAML.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script %q has no steps", s.Name)
	}
	return &s, nil
}

// eventFor maps a step key onto an engine event. Single runes become
// rune events, names like "space" or "shift" become the matching key code.
func eventFor(key string, press bool) (engine.KeyEvent, error) {
	if code, ok := engine.CodeByName(key); ok && code != engine.CodeRune {
		return engine.Key(code, press), nil
	}
	if utf8.RuneCountInString(key) == 1 {
		ch, _ := utf8.DecodeRuneInString(key)
		return engine.RuneKey(ch, press), nil
	}
	return engine.KeyEvent{}, fmt.Errorf("unknown key %q", key)
}

// Run replays the script from time zero and returns the final buffer state.
func (s *Script) Run() (*Result, error) {
	clk := &clock.Manual{}
	buf := textsink.NewBuffer()
	eng := engine.New(clk, buf, nil)

	for i, st := range s.Steps {
		if st.At < 0 {
			return nil, fmt.Errorf("step %d: negative timestamp", i)
		}
		clk.Set(st.At)
		switch {
		case st.Tap:
			ev, err := eventFor(st.Key, true)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			eng.HandleKey(ev)
			ev.Press = false
			eng.HandleKey(ev)
		case st.Press != nil:
			ev, err := eventFor(st.Key, *st.Press)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			eng.HandleKey(ev)
		default:
			return nil, fmt.Errorf("step %d: needs tap or press", i)
		}
	}

	return &Result{Committed: buf.Committed(), Composing: buf.Composing()}, nil
}

// Check compares the result against the script's expectations. Scripts
// without a want block always pass.
func (r *Result) Check(s *Script) error {
	if s.Want == nil {
		return nil
	}
	if r.Committed != s.Want.Committed {
		return fmt.Errorf("committed: got %q, want %q", r.Committed, s.Want.Committed)
	}
	if r.Composing != s.Want.Composing {
		return fmt.Errorf("composing: got %q, want %q", r.Composing, s.Want.Composing)
	}
	return nil
}
