// Package errors provides structured error reporting for transitions.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid construction or props, such as a
	// negative duration or a missing animation name.
	KindConfig
	// KindLifecycle indicates a call on a disposed controller or group.
	KindLifecycle
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TransitionError represents a structured error raised by a transition
// controller or group.
type TransitionError struct {
	// Op is the operation that failed (e.g., "transition.NewController").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the child key, if the error concerns a group member.
	Key string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TransitionError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// Config wraps err as a configuration error for op.
func Config(op string, err error) *TransitionError {
	return &TransitionError{Op: op, Kind: KindConfig, Err: err}
}

// PanicError represents a panic recovered from a lifecycle callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "transition.onShow").
	Op string
	// Key is the key of the controller whose callback panicked, if any.
	Key string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	switch {
	case e.Op != "" && e.Key != "":
		return fmt.Sprintf("panic in %s key=%s: %v", e.Op, e.Key, e.Value)
	case e.Op != "":
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	default:
		return fmt.Sprintf("panic: %v", e.Value)
	}
}

// ErrorHandler receives errors reported by transitions.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TransitionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
