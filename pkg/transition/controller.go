package transition

import (
	"github.com/go-drift/transition/pkg/animation"
	drifterrors "github.com/go-drift/transition/pkg/errors"
)

// Controller drives the enter/exit lifecycle of one visual unit.
//
// A controller turns the Into intent and a Duration into a [Status], the
// class names and style to render, and lifecycle callbacks. It runs at most
// one transition at a time: starting a transition always cancels the
// previous deferred completion first, so a superseded timer can never apply
// a stale status.
//
// Intent changes are recorded by SetInto and acted on by the next Update.
// Call Update once after construction (the first mount) and whenever the
// owner re-renders. Apply combines both for a full props change.
//
// Controllers are not safe for concurrent use. Callbacks run synchronously
// from Update or from the frame that completes a transition.
//
// Always call Dispose when the unit is discarded.
type Controller struct {
	key       string
	props     Props
	status    Status
	pending   pendingTransition
	deferred  *animation.Deferred
	gen       uint64
	scheduler animation.Scheduler
	observer  Observer

	statusListeners map[int]func(Status)
	nextListenerID  int

	// revealed is set while an unmounted unit sits at Exited only because
	// SetInto(true) is waiting for the next Update.
	revealed bool

	disposed       bool
	misuseReported bool
}

// NewController creates a controller whose initial status is derived from
// props and its mount policy:
//
//   - shown with TransitionAppear: Exited, with an enter pending
//   - shown without TransitionAppear: Entered
//   - hidden with MountOnEnter or UnmountOnExit: Unmounted
//   - hidden otherwise: Exited
//
// A negative duration or empty animation name is rejected with a
// *errors.TransitionError of kind KindConfig.
func NewController(props Props, opts ...Option) (*Controller, error) {
	if err := props.validate(); err != nil {
		return nil, drifterrors.Config("transition.NewController", err)
	}
	o := applyOptions(opts)

	c := &Controller{
		key:             o.key,
		props:           props,
		scheduler:       o.scheduler,
		observer:        o.observer,
		statusListeners: make(map[int]func(Status)),
	}
	c.status, c.pending = initialStatus(props)
	return c, nil
}

func initialStatus(p Props) (Status, pendingTransition) {
	if p.Into {
		if p.TransitionAppear {
			return StatusExited, pendingEnter
		}
		return StatusEntered, pendingNone
	}
	if p.MountOnEnter || p.UnmountOnExit {
		return StatusUnmounted, pendingNone
	}
	return StatusExited, pendingNone
}

// Key returns the key the controller reports in records.
func (c *Controller) Key() string {
	return c.key
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// Props returns a copy of the current props.
func (c *Controller) Props() Props {
	return c.props
}

// Pending returns the animating status the next Update will start, if any.
func (c *Controller) Pending() (Status, bool) {
	if c.pending == pendingNone {
		return 0, false
	}
	return c.pending.target(), true
}

// IsAnimating reports whether a deferred completion is outstanding.
func (c *Controller) IsAnimating() bool {
	return c.deferred.Pending()
}

// IsDisposed reports whether Dispose has been called.
func (c *Controller) IsDisposed() bool {
	return c.disposed
}

// SetInto records a new intent. The transition it implies starts on the
// next Update; if SetInto is called several times before that, the last
// call wins.
//
// Showing an unmounted unit moves it to Exited immediately so it is
// rendered for the enter animation. Hiding it again before that enter
// starts puts it back to Unmounted.
func (c *Controller) SetInto(into bool) {
	if c.disposed {
		c.reportMisuse("transition.SetInto")
		return
	}
	c.props.Into = into
	c.pending = c.nextPending(into)
	switch {
	case into && c.status == StatusUnmounted:
		c.revealed = true
		c.setStatus(StatusExited)
	case !into && c.revealed:
		c.revealed = false
		c.setStatus(StatusUnmounted)
	}
}

// nextPending returns the request implied by into given the current
// status. A request toward the direction already playing or settled is
// dropped, which also clears an earlier opposite request.
func (c *Controller) nextPending(into bool) pendingTransition {
	showing := c.status.isShowing()
	switch {
	case into && !showing:
		return pendingEnter
	case !into && showing:
		return pendingExit
	default:
		return pendingNone
	}
}

// Update consumes the pending transition, if any. Otherwise an Exited
// controller with UnmountOnExit moves to Unmounted.
func (c *Controller) Update() {
	if c.disposed {
		c.reportMisuse("transition.Update")
		return
	}
	if c.pending != pendingNone {
		c.start()
		return
	}
	if c.status == StatusExited && c.props.UnmountOnExit {
		c.setStatus(StatusUnmounted)
	}
}

// Apply replaces the controller's props and runs an update, as a parent
// re-render would. The mount policy flags only matter at construction.
// Invalid props are rejected and leave the controller untouched.
func (c *Controller) Apply(props Props) error {
	if c.disposed {
		c.reportMisuse("transition.Apply")
		return nil
	}
	if err := props.validate(); err != nil {
		e := drifterrors.Config("transition.Apply", err)
		e.Key = c.key
		return e
	}
	c.props = props
	c.SetInto(props.Into)
	c.Update()
	return nil
}

func (c *Controller) start() {
	target := c.pending.target()
	c.pending = pendingNone
	c.revealed = false

	if c.deferred.Cancel() {
		c.observer.TransitionSuperseded(c.key, c.status)
	}
	c.deferred = nil
	c.gen++
	gen := c.gen

	c.setStatus(target)
	c.invoke("transition.onStart", c.props.OnStart)
	if c.disposed || c.gen != gen {
		// OnStart started another transition or disposed the controller.
		return
	}

	d := c.props.Duration
	c.observer.TransitionStarted(c.key, target, d)
	if d <= 0 {
		c.complete(gen)
		return
	}
	h := c.scheduler.Schedule(d, func() {
		c.complete(gen)
	})
	if c.gen == gen && !c.disposed {
		c.deferred = h
	}
}

func (c *Controller) complete(gen uint64) {
	if c.disposed || c.gen != gen {
		return
	}
	c.deferred = nil

	var done func(Record)
	var op string
	switch c.status {
	case StatusEntering:
		c.setStatus(StatusEntered)
		done, op = c.props.OnShow, "transition.onShow"
	case StatusExiting:
		c.setStatus(StatusExited)
		done, op = c.props.OnHide, "transition.onHide"
	default:
		return
	}

	c.invoke("transition.onComplete", c.props.OnComplete)
	if c.disposed || c.gen != gen {
		return
	}
	c.invoke(op, done)
}

func (c *Controller) invoke(op string, fn func(Record)) {
	if fn == nil {
		return
	}
	rec := c.record()
	defer drifterrors.RecoverCallback(op, c.key)
	fn(rec)
}

func (c *Controller) record() Record {
	return Record{Key: c.key, Props: c.props, Status: c.status}
}

// ClassName returns the element's classes plus the animation name,
// "animating" and "in" or "out" while a transition plays.
func (c *Controller) ClassName() string {
	return classNames(c.props.Element.ClassName, c.props.Animation, c.status)
}

// Style returns the element's style with animation-duration set.
func (c *Controller) Style() Style {
	style := c.props.Element.Style.Clone()
	style[StyleAnimationDuration] = formatDuration(c.props.Duration)
	return style
}

// Render returns what the rendering collaborator should draw, or nil
// while the unit is unmounted or after Dispose.
func (c *Controller) Render() *Rendered {
	if c.disposed || c.status == StatusUnmounted {
		return nil
	}
	return &Rendered{
		Key:       c.key,
		Status:    c.status,
		ClassName: c.ClassName(),
		Style:     c.Style(),
		Content:   c.props.Element.Content,
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	if c.disposed || fn == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	from := c.status
	c.status = status
	c.observer.StatusChanged(c.key, from, status)
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

// Dispose cancels any outstanding completion and detaches listeners.
// Every later call on the controller is a no-op.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.deferred.Cancel()
	c.deferred = nil
	c.gen++
	c.pending = pendingNone
	c.disposed = true
	c.statusListeners = nil
}

func (c *Controller) reportMisuse(op string) {
	if c.misuseReported {
		return
	}
	c.misuseReported = true
	drifterrors.ReportLifecycle(op, c.key)
}
