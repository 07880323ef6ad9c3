package animation

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useFakeClock(t *testing.T) *clockwork.FakeClock {
	t.Helper()
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestFrames_FiresAfterDelay(t *testing.T) {
	clk := useFakeClock(t)

	fired := 0
	d := Frames.Schedule(300*time.Millisecond, func() { fired++ })
	require.True(t, d.Pending())

	clk.Advance(299 * time.Millisecond)
	StepTickers()
	assert.Equal(t, 0, fired)
	assert.Equal(t, DeferredPending, d.State())

	clk.Advance(time.Millisecond)
	StepTickers()
	assert.Equal(t, 1, fired)
	assert.Equal(t, DeferredFired, d.State())

	clk.Advance(time.Second)
	StepTickers()
	assert.Equal(t, 1, fired, "deferred callback must run once")
	assert.False(t, HasActiveTickers())
}

func TestFrames_CancelBeforeFire(t *testing.T) {
	clk := useFakeClock(t)

	fired := false
	d := Frames.Schedule(100*time.Millisecond, func() { fired = true })

	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel(), "second cancel reports nothing pending")

	clk.Advance(time.Second)
	StepTickers()
	assert.False(t, fired)
	assert.Equal(t, DeferredCancelled, d.State())
	assert.Zero(t, ActiveTickerCount())
}

func TestFrames_CancelFromSiblingCallback(t *testing.T) {
	clk := useFakeClock(t)

	var second *Deferred
	secondFired := false
	Frames.Schedule(10*time.Millisecond, func() { second.Cancel() })
	second = Frames.Schedule(10*time.Millisecond, func() { secondFired = true })

	clk.Advance(10 * time.Millisecond)
	StepTickers()
	assert.False(t, secondFired, "a handle cancelled earlier in the same frame must not fire")
}

func TestFrames_ZeroDelayFiresOnNextStep(t *testing.T) {
	useFakeClock(t)

	fired := false
	Frames.Schedule(0, func() { fired = true })
	assert.False(t, fired)

	StepTickers()
	assert.True(t, fired)
}

func TestImmediateScheduler(t *testing.T) {
	fired := false
	d := ImmediateScheduler{}.Schedule(time.Hour, func() { fired = true })

	assert.True(t, fired)
	assert.False(t, d.Pending())
	assert.Equal(t, time.Hour, d.Delay())
}

func TestDeferred_NilHandle(t *testing.T) {
	var d *Deferred
	assert.False(t, d.Cancel())
	assert.False(t, d.Pending())
	assert.Equal(t, DeferredCancelled, d.State())
	assert.Zero(t, d.Delay())
}

func TestDeferredStateString(t *testing.T) {
	tests := []struct {
		state DeferredState
		want  string
	}{
		{DeferredPending, "pending"},
		{DeferredFired, "fired"},
		{DeferredCancelled, "cancelled"},
		{DeferredState(9), "DeferredState(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestTicker_Elapsed(t *testing.T) {
	clk := useFakeClock(t)

	var seen []time.Duration
	ticker := NewTicker(func(elapsed time.Duration) { seen = append(seen, elapsed) })
	assert.Zero(t, ticker.Elapsed())

	ticker.Start()
	defer ticker.Stop()
	clk.Advance(16 * time.Millisecond)
	StepTickers()
	clk.Advance(16 * time.Millisecond)
	StepTickers()

	assert.Equal(t, []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}, seen)
	assert.Equal(t, 32*time.Millisecond, ticker.Elapsed())
	assert.True(t, ticker.IsActive())
}
