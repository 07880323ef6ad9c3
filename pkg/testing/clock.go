package testing

import (
	"testing"
	"time"

	"github.com/go-drift/transition/pkg/animation"
	"github.com/jonboulle/clockwork"
)

// Epoch is the time a harness clock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FrameInterval is the step Frames uses when none is given.
const FrameInterval = 16 * time.Millisecond

// Harness installs a fake animation clock for the duration of a test and
// drives the ticker frame loop by hand.
type Harness struct {
	tb    testing.TB
	clock *clockwork.FakeClock
}

// NewHarness replaces the animation clock with a fake one. The previous
// clock is restored when the test finishes.
func NewHarness(tb testing.TB) *Harness {
	tb.Helper()
	clk := clockwork.NewFakeClockAt(Epoch)
	prev := animation.SetClock(clk)
	tb.Cleanup(func() {
		animation.SetClock(prev)
	})
	return &Harness{tb: tb, clock: clk}
}

// Clock returns the fake clock.
func (h *Harness) Clock() *clockwork.FakeClock {
	return h.clock
}

// Elapsed returns how far the clock has moved since the harness started.
func (h *Harness) Elapsed() time.Duration {
	return h.clock.Since(Epoch)
}

// Pump steps active tickers once without moving time.
func (h *Harness) Pump() {
	animation.StepTickers()
}

// Advance moves time forward by d and steps active tickers once.
func (h *Harness) Advance(d time.Duration) {
	h.clock.Advance(d)
	animation.StepTickers()
}

// Frames advances time by total in steps of interval, stepping tickers
// after each one. A non-positive interval uses FrameInterval.
func (h *Harness) Frames(total, interval time.Duration) {
	if interval <= 0 {
		interval = FrameInterval
	}
	for total > 0 {
		step := interval
		if step > total {
			step = total
		}
		h.Advance(step)
		total -= step
	}
}

// Settle steps frames until no ticker is active, failing the test if that
// takes longer than timeout.
func (h *Harness) Settle(timeout time.Duration) {
	h.tb.Helper()
	var waited time.Duration
	for animation.HasActiveTickers() {
		if waited >= timeout {
			h.tb.Fatalf("tickers still active after %v", timeout)
			return
		}
		h.Advance(FrameInterval)
		waited += FrameInterval
	}
}
