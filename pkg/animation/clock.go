package animation

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source for tickers and deferred completions. Any
// clockwork.Clock satisfies it, including *clockwork.FakeClock, which is
// how tests and the scenario runner drive transitions on simulated time.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

var (
	clockMu sync.RWMutex
	clock   Clock = clockwork.NewRealClock()
)

// SetClock installs c and returns the clock it replaced. Passing nil
// restores system time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

func current() Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock
}

// Now returns the current time from the active clock.
func Now() time.Time { return current().Now() }

// Since returns the time elapsed since t on the active clock.
func Since(t time.Time) time.Duration { return current().Since(t) }
