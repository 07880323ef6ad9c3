package errors

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrDisposed is wrapped by lifecycle errors reported when a disposed
// controller or group is used.
var ErrDisposed = errors.New("use after dispose")

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler writing through logger.Default().
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler and returns the previous
// one. Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := DefaultHandler
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
	return prev
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *TransitionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportLifecycle reports use of a disposed controller or group.
func ReportLifecycle(op, key string) {
	Report(&TransitionError{
		Op:   op,
		Kind: KindLifecycle,
		Key:  key,
		Err:  ErrDisposed,
	})
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("transition.onShow")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, "", r)
	}
}

// RecoverCallback is like Recover and also records the key of the
// controller whose callback panicked.
func RecoverCallback(op, key string) {
	if r := recover(); r != nil {
		reportRecovered(op, key, r)
	}
}

// RecoverWithCallback is like Recover but also calls the provided callback
// with the panic value after reporting it.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, "", r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op, key string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Key:        key,
		Value:      r,
		StackTrace: zap.StackSkip("", 3).String,
	})
}

// CaptureStack returns the current call stack as a string, starting at
// the caller of CaptureStack.
func CaptureStack() string {
	return zap.StackSkip("", 1).String
}
