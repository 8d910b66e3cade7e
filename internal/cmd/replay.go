package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sodam-ime/sodam/internal/log"
	"github.com/sodam-ime/sodam/internal/script"
)

// Replay runs a recorded key script through the engine and prints the
// resulting text field state.
type Replay struct {
	Script string `arg:"" help:"Path to a YAML key script" type:"existingfile"`
	Check  bool   `help:"Fail when the script's want block does not match" default:"true" negatable:""`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, events log.EventLogger) error {
	s, err := script.Load(r.Script)
	if err != nil {
		return err
	}
	logger.Info("replaying script", "name", s.Name, "steps", len(s.Steps))

	for _, st := range s.Steps {
		if st.Tap {
			events.Log(st.At, st.Key, true)
			events.Log(st.At, st.Key, false)
		} else if st.Press != nil {
			events.Log(st.At, st.Key, *st.Press)
		}
	}

	res, err := s.Run()
	if err != nil {
		return err
	}

	fmt.Printf("committed: %q\n", res.Committed)
	fmt.Printf("composing: %q\n", res.Composing)

	if r.Check {
		if err := res.Check(s); err != nil {
			return fmt.Errorf("script %q: %w", s.Name, err)
		}
		logger.Info("script matched expectations", "name", s.Name)
	}
	return nil
}
