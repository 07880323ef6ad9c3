package transition

import (
	"github.com/go-drift/transition/pkg/animation"
	"github.com/go-drift/transition/pkg/logger"
)

type options struct {
	key       string
	scheduler animation.Scheduler
	observer  Observer
}

func defaultOptions() options {
	return options{
		scheduler: animation.Frames,
		observer:  NopObserver{},
	}
}

// Option configures a Controller or Group.
type Option func(*options)

// WithScheduler sets the scheduler used for deferred completions.
// Defaults to animation.Frames.
func WithScheduler(s animation.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithObserver installs a lifecycle observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithLogger installs a LogObserver writing to l.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.observer = NewLogObserver(l)
	}
}

// WithKey names a standalone controller in records and observer events.
// Groups set the key of the controllers they own.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
