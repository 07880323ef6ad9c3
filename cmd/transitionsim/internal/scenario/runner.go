package scenario

import (
	"fmt"
	"time"

	"github.com/go-drift/transition/pkg/animation"
	"github.com/go-drift/transition/pkg/config"
	"github.com/go-drift/transition/pkg/logger"
	"github.com/go-drift/transition/pkg/transition"
	"github.com/jonboulle/clockwork"
)

// DefaultFrame is the frame interval used when Runner.Frame is zero.
const DefaultFrame = 16 * time.Millisecond

// epoch is the fake clock's start time. Event times are offsets from it.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// EventKind classifies timeline events.
type EventKind string

const (
	EventStatus     EventKind = "status"
	EventStarted    EventKind = "started"
	EventSuperseded EventKind = "superseded"
	EventRemoved    EventKind = "removed"
	EventRender     EventKind = "render"
)

// Event is one entry of a replayed timeline.
type Event struct {
	At   time.Duration
	Kind EventKind
	Key  string
	From transition.Status
	To   transition.Status
	// Detail carries the rendered class names for render events and the
	// duration for started events.
	Detail string
}

// Result is the outcome of a replay.
type Result struct {
	Name    string
	Elapsed time.Duration
	Events  []Event
	// Final is the rendered output after the last step.
	Final []transition.Rendered
}

// Runner replays scenarios on a fake clock.
type Runner struct {
	// Presets resolves "use" references. May be nil.
	Presets *config.File
	// Frame is the interval the clock is stepped by while advancing.
	Frame time.Duration
	// Logger, when set, receives every transition event at debug level.
	Logger *logger.Logger
}

// Run replays s. The package-level animation clock is replaced for the
// duration of the call, so runs must not overlap.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	clk := clockwork.NewFakeClockAt(epoch)
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	tl := &timeline{clock: clk}
	if r.Logger != nil {
		tl.next = transition.NewLogObserver(r.Logger)
	}
	opts := []transition.Option{
		transition.WithScheduler(animation.Frames),
		transition.WithObserver(tl),
	}

	var (
		res *Result
		err error
	)
	if s.Controller != nil {
		res, err = r.runController(s, clk, tl, opts)
	} else {
		res, err = r.runGroup(s, clk, tl, opts)
	}
	if err != nil {
		return nil, err
	}
	res.Name = s.Name
	res.Elapsed = clk.Since(epoch)
	res.Events = tl.events
	return res, nil
}

func (r *Runner) runController(s *Scenario, clk *clockwork.FakeClock, tl *timeline, opts []transition.Option) (*Result, error) {
	props, err := r.controllerProps(s.Controller)
	if err != nil {
		return nil, err
	}
	c, err := transition.NewController(props, opts...)
	if err != nil {
		return nil, err
	}
	defer c.Dispose()
	c.Update()

	for _, step := range s.Steps {
		switch {
		case step.Into != nil:
			c.SetInto(*step.Into)
			c.Update()
		case step.Intent != nil:
			c.SetInto(*step.Intent)
		case step.Update:
			c.Update()
		case step.Advance.IsSet():
			r.advance(clk, step.Advance.Duration)
		case step.Render:
			tl.render(c.Render())
		}
	}

	res := &Result{}
	if out := c.Render(); out != nil {
		res.Final = []transition.Rendered{*out}
	}
	return res, nil
}

func (r *Runner) runGroup(s *Scenario, clk *clockwork.FakeClock, tl *timeline, opts []transition.Option) (*Result, error) {
	cfg, err := r.groupConfig(s.Group)
	if err != nil {
		return nil, err
	}
	cfg.Children = children(s.Group.Children)
	cfg.OnRemoved = tl.removed
	g, err := transition.NewGroup(cfg, opts...)
	if err != nil {
		return nil, err
	}
	defer g.Dispose()

	current := s.Group.Children
	for i, step := range s.Steps {
		switch {
		case step.Update, step.Children != nil:
			if step.Children != nil {
				current = *step.Children
			}
			if err := g.Update(children(current)); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		case step.Advance.IsSet():
			r.advance(clk, step.Advance.Duration)
		case step.Render:
			for _, out := range g.Render() {
				tl.render(&out)
			}
		}
	}

	return &Result{Final: g.Render()}, nil
}

func (r *Runner) controllerProps(setup *ControllerSetup) (transition.Props, error) {
	preset := setup.Preset
	if setup.Use != "" {
		p, ok := r.Presets.Lookup(setup.Use)
		if !ok {
			return transition.Props{}, fmt.Errorf("unknown preset %q", setup.Use)
		}
		preset = p
	}
	props := preset.Props()
	props.Into = setup.Into
	props.Element = transition.Element{ClassName: setup.ClassName}
	return props, nil
}

func (r *Runner) groupConfig(setup *GroupSetup) (transition.GroupConfig, error) {
	preset := setup.GroupPreset
	if setup.Use != "" {
		p, ok := r.Presets.Group(setup.Use)
		if !ok {
			return transition.GroupConfig{}, fmt.Errorf("unknown group preset %q", setup.Use)
		}
		preset = p
	}
	return preset.Config(), nil
}

// advance moves the clock forward by d one frame at a time, stepping the
// tickers after each frame.
func (r *Runner) advance(clk *clockwork.FakeClock, d time.Duration) {
	frame := r.Frame
	if frame <= 0 {
		frame = DefaultFrame
	}
	for d > 0 {
		step := min(frame, d)
		clk.Advance(step)
		animation.StepTickers()
		d -= step
	}
}

func children(keys []string) []transition.Child {
	out := make([]transition.Child, len(keys))
	for i, key := range keys {
		out[i] = transition.Child{
			Key:   key,
			Props: transition.Props{Element: transition.Element{Content: key}},
		}
	}
	return out
}

// timeline records observer callbacks as events.
type timeline struct {
	clock  clockwork.Clock
	next   transition.Observer
	events []Event
}

func (t *timeline) add(e Event) {
	e.At = t.clock.Since(epoch)
	t.events = append(t.events, e)
}

func (t *timeline) StatusChanged(key string, from, to transition.Status) {
	t.add(Event{Kind: EventStatus, Key: key, From: from, To: to})
	if t.next != nil {
		t.next.StatusChanged(key, from, to)
	}
}

func (t *timeline) TransitionStarted(key string, to transition.Status, d time.Duration) {
	t.add(Event{Kind: EventStarted, Key: key, To: to, Detail: d.String()})
	if t.next != nil {
		t.next.TransitionStarted(key, to, d)
	}
}

func (t *timeline) TransitionSuperseded(key string, status transition.Status) {
	t.add(Event{Kind: EventSuperseded, Key: key, From: status})
	if t.next != nil {
		t.next.TransitionSuperseded(key, status)
	}
}

func (t *timeline) removed(key string) {
	t.add(Event{Kind: EventRemoved, Key: key})
}

func (t *timeline) render(out *transition.Rendered) {
	if out == nil {
		t.add(Event{Kind: EventRender, To: transition.StatusUnmounted})
		return
	}
	t.add(Event{Kind: EventRender, Key: out.Key, To: out.Status, Detail: out.ClassName})
}
