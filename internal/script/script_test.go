package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hangulScript = `
name: type-han
steps:
  - { at: 0, key: hangul, press: true }
  - { at: 600, key: hangul, press: false }
  - { at: 1000, key: g, tap: true }
  - { at: 1400, key: k, tap: true }
  - { at: 1800, key: s, tap: true }
  - { at: 2200, key: space, tap: true }
want:
  committed: "한 "
  composing: ""
`

func TestParseAndRun(t *testing.T) {
	s, err := Parse(strings.NewReader(hangulScript))
	require.NoError(t, err)
	assert.Equal(t, "type-han", s.Name)
	require.Len(t, s.Steps, 6)

	res, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, "한 ", res.Committed)
	assert.Empty(t, res.Composing)
	assert.NoError(t, res.Check(s))
}

func TestRunLatin(t *testing.T) {
	src := `
name: latin
steps:
  - { at: 0, key: shift, press: true }
  - { at: 100, key: a, tap: true }
  - { at: 400, key: shift, press: false }
  - { at: 800, key: b, tap: true }
`
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	res, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, "Ab", res.Committed)
}

func TestCheckMismatch(t *testing.T) {
	src := `
name: bad
steps:
  - { at: 0, key: a, tap: true }
want:
  committed: "b"
  composing: ""
`
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	res, err := s.Run()
	require.NoError(t, err)
	assert.Error(t, res.Check(s))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty steps", "name: x\nsteps: []"},
		{"unknown field", "name: x\nbogus: 1\nsteps: [{at: 0, key: a, tap: true}]"},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "name: x\nsteps: [{at: 0, key: weird, tap: true}]"},
		{"missing action", "name: x\nsteps: [{at: 0, key: a}]"},
		{"negative time", "name: x\nsteps: [{at: -1, key: a, tap: true}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, err = s.Run()
			assert.Error(t, err)
		})
	}
}
