package transition

import (
	"time"

	"github.com/go-drift/transition/pkg/logger"
)

// Observer receives lifecycle events from controllers and groups. It is a
// debugging hook and must not mutate the controller that reports to it.
type Observer interface {
	// StatusChanged is called after every status change.
	StatusChanged(key string, from, to Status)
	// TransitionStarted is called when an enter or exit animation is
	// scheduled to finish after d.
	TransitionStarted(key string, to Status, d time.Duration)
	// TransitionSuperseded is called when a newer transition cancels a
	// pending completion while the controller is in status.
	TransitionSuperseded(key string, status Status)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) StatusChanged(string, Status, Status) {}
func (NopObserver) TransitionStarted(string, Status, time.Duration) {}
func (NopObserver) TransitionSuperseded(string, Status) {}

// LogObserver writes every event to a logger at debug level.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver returns an observer logging through l. A nil l uses
// logger.Default().
func NewLogObserver(l *logger.Logger) *LogObserver {
	if l == nil {
		l = logger.Default()
	}
	return &LogObserver{log: l.Named("transition")}
}

func (o *LogObserver) StatusChanged(key string, from, to Status) {
	o.log.Debug("status changed",
		logger.String("key", key),
		logger.String("from", from.String()),
		logger.String("to", to.String()),
	)
}

func (o *LogObserver) TransitionStarted(key string, to Status, d time.Duration) {
	o.log.Debug("transition started",
		logger.String("key", key),
		logger.String("status", to.String()),
		logger.Duration("duration", d),
	)
}

func (o *LogObserver) TransitionSuperseded(key string, status Status) {
	o.log.Debug("transition superseded",
		logger.String("key", key),
		logger.String("status", status.String()),
	)
}
