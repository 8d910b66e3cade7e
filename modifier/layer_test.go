package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sodam-ime/sodam/clock"
	"github.com/sodam-ime/sodam/modifier"
)

func TestLayerToggleLongPress(t *testing.T) {
	clk := &clock.Manual{}
	lt := modifier.NewLayerToggle(clk, modifier.LayerHangul)

	assert.Equal(t, modifier.LayerHangul, lt.Layer())

	lt.OnTriggerDown()
	assert.True(t, lt.IsTriggerPressed())
	clk.Advance(modifier.LongPressThreshold)
	lt.OnTriggerUp()

	assert.True(t, lt.Active())
	assert.False(t, lt.IsTriggerPressed())
	assert.True(t, lt.WasJustToggled())
	assert.False(t, lt.WasJustToggled(), "just-toggled is a read-and-clear latch")

	// A long press while active toggles back off.
	lt.OnTriggerDown()
	clk.Advance(modifier.LongPressThreshold + 100)
	lt.OnTriggerUp()
	assert.False(t, lt.Active())
	assert.True(t, lt.WasJustToggled())
}

func TestLayerToggleShortPressIsNoop(t *testing.T) {
	clk := &clock.Manual{}
	lt := modifier.NewLayerToggle(clk, modifier.LayerCyrillic)

	lt.OnTriggerDown()
	clk.Advance(modifier.LongPressThreshold - 1)
	lt.OnTriggerUp()

	assert.False(t, lt.Active())
	assert.False(t, lt.WasJustToggled())
}

func TestLayerToggleInstant(t *testing.T) {
	clk := &clock.Manual{}
	lt := modifier.NewLayerToggle(clk, modifier.LayerHangul)

	// Combo path: trigger is down when another key instant-toggles.
	lt.OnTriggerDown()
	lt.InstantToggle()
	assert.True(t, lt.Active())
	assert.True(t, lt.WasJustToggled())

	// The in-flight release must not toggle again, however long the press.
	clk.Advance(modifier.LongPressThreshold * 2)
	lt.OnTriggerUp()
	assert.True(t, lt.Active())
	assert.False(t, lt.WasJustToggled())
	assert.False(t, lt.IsTriggerPressed())

	// Suppression applies to one release only.
	lt.OnTriggerDown()
	clk.Advance(modifier.LongPressThreshold)
	lt.OnTriggerUp()
	assert.False(t, lt.Active())
}

func TestLayerToggleForceAndReset(t *testing.T) {
	clk := &clock.Manual{}
	lt := modifier.NewLayerToggle(clk, modifier.LayerHangul)

	lt.Activate()
	assert.True(t, lt.Active())
	assert.False(t, lt.WasJustToggled(), "forcing does not count as a toggle")

	lt.Deactivate()
	assert.False(t, lt.Active())

	lt.Activate()
	lt.OnTriggerDown()
	lt.Reset()
	assert.False(t, lt.Active())
	assert.False(t, lt.IsTriggerPressed())
	assert.False(t, lt.WasJustToggled())
	assert.Equal(t, modifier.LayerHangul, lt.Layer(), "identity survives a reset")
}
