package transition

import "fmt"

// Status is the lifecycle state of a single transitioning unit.
//
// The status follows this state machine:
//
//	           SetInto(true)            Update               duration
//	Unmounted ───────────────► Exited ─────────► Entering ─────────────► Entered
//	    ▲                        ▲                                          │
//	    │ Update                 │ duration                     SetInto(false)
//	    │ (UnmountOnExit)        │                                 + Update │
//	    └────────────────────  Exited ◄──────────── Exiting ◄───────────────┘
//
// The two Exited boxes are the same state; the left edge is only taken
// when UnmountOnExit is set and no transition is pending.
// Entering and Exiting are the only states with a live deferred completion.
type Status int

const (
	// StatusUnmounted means the unit is not rendered at all.
	StatusUnmounted Status = iota
	// StatusExited means the unit is rendered in its hidden resting state.
	StatusExited
	// StatusEntering means the enter animation is playing.
	StatusEntering
	// StatusEntered means the unit is rendered in its shown resting state.
	StatusEntered
	// StatusExiting means the exit animation is playing.
	StatusExiting
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnmounted:
		return "unmounted"
	case StatusExited:
		return "exited"
	case StatusEntering:
		return "entering"
	case StatusEntered:
		return "entered"
	case StatusExiting:
		return "exiting"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// IsAnimating reports whether s is Entering or Exiting.
func (s Status) IsAnimating() bool {
	return s == StatusEntering || s == StatusExiting
}

// isShowing reports whether s is heading toward or resting at shown.
func (s Status) isShowing() bool {
	return s == StatusEntering || s == StatusEntered
}

// pendingTransition is a requested transition waiting for the next Update.
type pendingTransition int

const (
	pendingNone pendingTransition = iota
	pendingEnter
	pendingExit
)

func (p pendingTransition) String() string {
	switch p {
	case pendingEnter:
		return "entering-requested"
	case pendingExit:
		return "exiting-requested"
	default:
		return "none"
	}
}

// target returns the animating status the request leads to.
func (p pendingTransition) target() Status {
	if p == pendingExit {
		return StatusExiting
	}
	return StatusEntering
}
