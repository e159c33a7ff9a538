package timingtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, clk.Now().Sub(start))
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)

	assert.True(t, clk.Now().Equal(target))
}

func TestFakeClock_TimersFireInDueOrder(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	var fired []string
	var at []time.Duration
	record := func(name string) func() {
		return func() {
			fired = append(fired, name)
			at = append(at, clk.Now().Sub(start))
		}
	}
	clk.AfterFunc(30*time.Millisecond, record("c"))
	clk.AfterFunc(10*time.Millisecond, record("a"))
	clk.AfterFunc(20*time.Millisecond, record("b"))
	clk.AfterFunc(20*time.Millisecond, record("b2"))

	clk.Advance(25 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "b2"}, fired)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond}, at)
	assert.Equal(t, 1, clk.Pending())
	assert.Equal(t, 25*time.Millisecond, clk.Now().Sub(start))

	clk.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, fired)
	assert.Zero(t, clk.Pending())
}

func TestFakeClock_Stop(t *testing.T) {
	clk := NewFakeClock()
	fired := false
	timer := clk.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	clk.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestFakeClock_ZeroDelayFiresOnZeroAdvance(t *testing.T) {
	clk := NewFakeClock()
	fired := 0
	clk.AfterFunc(0, func() { fired++ })

	assert.Equal(t, 0, fired)
	clk.Advance(0)
	assert.Equal(t, 1, fired)
}

func TestFakeClock_NestedTimers(t *testing.T) {
	clk := NewFakeClock()
	var order []string
	clk.AfterFunc(10*time.Millisecond, func() {
		order = append(order, "outer")
		clk.AfterFunc(5*time.Millisecond, func() { order = append(order, "inner") })
	})

	clk.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"outer", "inner"}, order)
}
