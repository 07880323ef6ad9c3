package errors

import (
	"github.com/go-drift/transition/pkg/logger"
)

// LogHandler is an ErrorHandler that writes through a structured logger.
// Lifecycle errors are logged at debug level since they are expected
// no-ops; everything else is logged as an error.
type LogHandler struct {
	// Logger receives the entries. Nil uses logger.Default().
	Logger *logger.Logger
	// Verbose adds stack traces to the output.
	Verbose bool
}

func (h *LogHandler) log() *logger.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logger.Default()
}

// HandleError logs a TransitionError.
func (h *LogHandler) HandleError(err *TransitionError) {
	if err == nil {
		return
	}
	fields := []logger.Field{
		logger.String("op", err.Op),
		logger.String("kind", err.Kind.String()),
		logger.Error(err.Err),
	}
	if err.Key != "" {
		fields = append(fields, logger.String("key", err.Key))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, logger.String("stack", err.StackTrace))
	}
	if err.Kind == KindLifecycle {
		h.log().Debug("transition error", fields...)
		return
	}
	h.log().Error("transition error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []logger.Field{
		logger.String("op", err.Op),
		logger.Any("value", err.Value),
	}
	if err.Key != "" {
		fields = append(fields, logger.String("key", err.Key))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, logger.String("stack", err.StackTrace))
	}
	h.log().Error("transition panic", fields...)
}
