package testing

import (
	"github.com/go-drift/transition/pkg/transition"
)

// Callback names used by Recorder.
const (
	OnStart    = "onStart"
	OnComplete = "onComplete"
	OnShow     = "onShow"
	OnHide     = "onHide"
)

// Call is one recorded callback invocation.
type Call struct {
	Name   string
	Record transition.Record
}

// Recorder captures lifecycle callbacks in the order they fire.
type Recorder struct {
	calls []Call
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Hook returns a callback that records invocations under name.
func (r *Recorder) Hook(name string) func(transition.Record) {
	return func(rec transition.Record) {
		r.calls = append(r.calls, Call{Name: name, Record: rec})
	}
}

// Wire sets all four lifecycle callbacks of p to recording hooks.
func (r *Recorder) Wire(p transition.Props) transition.Props {
	p.OnStart = r.Hook(OnStart)
	p.OnComplete = r.Hook(OnComplete)
	p.OnShow = r.Hook(OnShow)
	p.OnHide = r.Hook(OnHide)
	return p
}

// Calls returns every recorded call.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns the callback names in firing order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times name fired.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent record for name.
func (r *Recorder) Last(name string) (transition.Record, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Name == name {
			return r.calls[i].Record, true
		}
	}
	return transition.Record{}, false
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = nil
}

// StatusLog records every status a controller passes through.
type StatusLog struct {
	Statuses []transition.Status
}

// Watch subscribes to c and returns the log.
func Watch(c *transition.Controller) *StatusLog {
	log := &StatusLog{}
	c.AddStatusListener(func(s transition.Status) {
		log.Statuses = append(log.Statuses, s)
	})
	return log
}
