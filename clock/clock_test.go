package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sodam-ime/sodam/clock"
)

func TestManualAdvance(t *testing.T) {
	var c clock.Manual
	assert.EqualValues(t, 0, c.NowMillis())

	c.Advance(250)
	assert.EqualValues(t, 250, c.NowMillis())

	c.Advance(100)
	assert.EqualValues(t, 350, c.NowMillis())

	c.Advance(-50)
	assert.EqualValues(t, 350, c.NowMillis(), "negative advance must be ignored")
}

func TestManualSet(t *testing.T) {
	var c clock.Manual
	c.Set(500)
	assert.EqualValues(t, 500, c.NowMillis())

	c.Set(200)
	assert.EqualValues(t, 500, c.NowMillis(), "Set must never move the clock backwards")

	c.Set(501)
	assert.EqualValues(t, 501, c.NowMillis())
}

func TestSystemMonotonic(t *testing.T) {
	c := clock.System()
	a := c.NowMillis()
	time.Sleep(5 * time.Millisecond)
	b := c.NowMillis()
	assert.GreaterOrEqual(t, a, int64(0))
	assert.Greater(t, b, a)
}
