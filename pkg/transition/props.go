package transition

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNegativeDuration is returned when Props.Duration is below zero.
	ErrNegativeDuration = errors.New("transition: duration must not be negative")
	// ErrMissingAnimation is returned when Props.Animation is empty.
	ErrMissingAnimation = errors.New("transition: animation name is required")
)

// Class names added to the wrapped element while a transition runs.
const (
	ClassAnimating = "animating"
	ClassIn        = "in"
	ClassOut       = "out"
)

// StyleAnimationDuration is the inline style property carrying Props.Duration.
const StyleAnimationDuration = "animation-duration"

// Props configures a [Controller].
//
// MountOnEnter, UnmountOnExit and TransitionAppear are read once at
// construction; later changes through Apply only affect UnmountOnExit's
// effect on future exits.
type Props struct {
	// Animation is the symbolic animation name added as a class while
	// entering or exiting. Required.
	Animation string
	// Duration is the length of both the enter and exit animation. Zero
	// settles transitions synchronously. The animation-duration style is
	// emitted in whole milliseconds, so any sub-millisecond part only
	// affects the completion timer.
	Duration time.Duration
	// Into is the desired shown state.
	Into bool

	// MountOnEnter keeps an initially hidden unit unmounted until its first
	// enter.
	MountOnEnter bool
	// UnmountOnExit unmounts the unit one update after an exit completes.
	UnmountOnExit bool
	// TransitionAppear plays the enter animation when the unit is shown
	// from the very first update.
	TransitionAppear bool

	// OnStart is called when an enter or exit animation begins.
	OnStart func(Record)
	// OnComplete is called when an enter or exit animation finishes,
	// before OnShow or OnHide.
	OnComplete func(Record)
	// OnShow is called after an enter animation finishes.
	OnShow func(Record)
	// OnHide is called after an exit animation finishes.
	OnHide func(Record)

	// Element is the wrapped visual unit.
	Element Element
}

func (p Props) validate() error {
	if p.Duration < 0 {
		return ErrNegativeDuration
	}
	if strings.TrimSpace(p.Animation) == "" {
		return ErrMissingAnimation
	}
	return nil
}

// Record is passed to lifecycle callbacks.
type Record struct {
	// Key identifies the controller inside a group; empty otherwise.
	Key string
	// Props are the controller's props at the time of the callback.
	Props Props
	// Status is the status the controller reached.
	Status Status
}

// Style holds inline style properties.
type Style map[string]string

// Clone returns a copy of s. A nil style clones to an empty one.
func (s Style) Clone() Style {
	out := make(Style, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Element is the visual unit wrapped by a transition. The rendering
// collaborator owns Content; the controller only merges class names and
// style.
type Element struct {
	ClassName string
	Style     Style
	Content   any
}

// Rendered is the output handed to the rendering collaborator.
type Rendered struct {
	Key       string
	Status    Status
	ClassName string
	Style     Style
	Content   any
}

// HasClass reports whether name is one of r's classes.
func (r Rendered) HasClass(name string) bool {
	for _, c := range strings.Fields(r.ClassName) {
		if c == name {
			return true
		}
	}
	return false
}

// classNames joins the element's own classes with the markers for status.
func classNames(own, animation string, status Status) string {
	classes := strings.Fields(own)
	if status.IsAnimating() {
		classes = append(classes, strings.Fields(animation)...)
		classes = append(classes, ClassAnimating)
		if status == StatusEntering {
			classes = append(classes, ClassIn)
		} else {
			classes = append(classes, ClassOut)
		}
	}
	return strings.Join(classes, " ")
}

// formatDuration renders d as whole milliseconds, e.g. "500ms". Any
// sub-millisecond remainder is truncated.
func formatDuration(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
