package animation

import (
	"fmt"
	"time"
)

// Scheduler runs a callback once a delay has elapsed.
//
// Implementations must never run fn after the returned handle has been
// cancelled.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) *Deferred
}

// DeferredState reports where a [Deferred] is in its life.
type DeferredState int

const (
	// DeferredPending means the callback has not run yet.
	DeferredPending DeferredState = iota
	// DeferredFired means the callback ran.
	DeferredFired
	// DeferredCancelled means Cancel was called before the callback ran.
	DeferredCancelled
)

// String returns a human-readable representation of the deferred state.
func (s DeferredState) String() string {
	switch s {
	case DeferredPending:
		return "pending"
	case DeferredFired:
		return "fired"
	case DeferredCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("DeferredState(%d)", int(s))
	}
}

// Deferred is a cancellable pending callback.
type Deferred struct {
	delay  time.Duration
	fn     func()
	ticker *Ticker
	state  DeferredState
}

// Cancel prevents the callback from running. It reports whether the
// callback was still pending. Cancelling a nil, fired or already
// cancelled handle is a no-op.
func (d *Deferred) Cancel() bool {
	if d == nil || d.state != DeferredPending {
		return false
	}
	d.state = DeferredCancelled
	if d.ticker != nil {
		d.ticker.Stop()
	}
	d.fn = nil
	return true
}

// Pending reports whether the callback has yet to run or be cancelled.
func (d *Deferred) Pending() bool {
	return d != nil && d.state == DeferredPending
}

// State returns the current state of the handle.
func (d *Deferred) State() DeferredState {
	if d == nil {
		return DeferredCancelled
	}
	return d.state
}

// Delay returns the delay the handle was scheduled with.
func (d *Deferred) Delay() time.Duration {
	if d == nil {
		return 0
	}
	return d.delay
}

func (d *Deferred) fire() {
	if d.state != DeferredPending {
		return
	}
	d.state = DeferredFired
	if d.ticker != nil {
		d.ticker.Stop()
	}
	fn := d.fn
	d.fn = nil
	if fn != nil {
		fn()
	}
}

// frameScheduler fires deferred callbacks from StepTickers.
type frameScheduler struct{}

// Frames is the default [Scheduler]. Callbacks run from the first
// [StepTickers] call at which the delay has elapsed.
var Frames Scheduler = frameScheduler{}

func (frameScheduler) Schedule(delay time.Duration, fn func()) *Deferred {
	d := &Deferred{delay: delay, fn: fn}
	d.ticker = NewTicker(func(elapsed time.Duration) {
		if elapsed < delay {
			return
		}
		d.fire()
	})
	d.ticker.Start()
	return d
}

// ImmediateScheduler runs callbacks synchronously inside Schedule,
// ignoring the delay. Useful for headless callers that only care about
// the final state.
type ImmediateScheduler struct{}

// Schedule runs fn before returning an already-fired handle.
func (ImmediateScheduler) Schedule(delay time.Duration, fn func()) *Deferred {
	d := &Deferred{delay: delay, fn: fn}
	d.fire()
	return d
}
