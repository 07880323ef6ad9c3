// Package animation provides the timing primitives behind transitions.
//
// # Core Components
//
//   - [Clock]: the time source. Replace it with [SetClock] in tests.
//
//   - [Ticker]: a frame callback that receives the time elapsed since it was
//     started. Tickers do nothing on their own; the host frame loop advances
//     every active ticker by calling [StepTickers] once per frame.
//
//   - [Scheduler] and [Deferred]: a cancellable "run this after d" handle built
//     on tickers. Transition controllers use it to mark the end of an enter or
//     exit animation.
//
// # Basic Usage
//
//	d := animation.Frames.Schedule(300*time.Millisecond, func() {
//	    fmt.Println("animation finished")
//	})
//
//	// Each frame
//	animation.StepTickers()
//
//	// Superseded by a newer transition
//	d.Cancel()
//
// Everything here is cooperative: callbacks only ever run from inside
// StepTickers, on whichever goroutine drives the frame loop.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
	tickerOrder   []*Ticker
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerOrder = append(tickerOrder, t)
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	for i, other := range tickerOrder {
		if other == t {
			tickerOrder = append(tickerOrder[:i], tickerOrder[i+1:]...)
			break
		}
	}
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Since(t.start)
}

// StepTickers advances all active tickers in the order they were started.
// This should be called once per frame from the frame loop.
func StepTickers() {
	tickerMu.Lock()
	if len(tickerOrder) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock
	tickers := make([]*Ticker, len(tickerOrder))
	copy(tickers, tickerOrder)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// ActiveTickerCount returns the number of running tickers.
func ActiveTickerCount() int {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers)
}
