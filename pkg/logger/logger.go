// Package logger wraps zap with the console format used across the
// transition packages.
package logger

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a logging priority.
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Field is a structured log field.
type Field = zap.Field

// Option configures the underlying zap logger.
type Option = zap.Option

// Field constructors re-exported so callers need not import zap.
var (
	String   = zap.String
	Bool     = zap.Bool
	Int      = zap.Int
	Duration = zap.Duration
	Error    = zap.Error
	Any      = zap.Any
)

// Logger is a leveled structured logger.
type Logger struct {
	l  *zap.Logger
	al *zap.AtomicLevel
}

// New builds a logger writing console-encoded lines to out.
// A nil out writes to stderr.
func New(out io.Writer, level Level, opts ...Option) *Logger {
	if out == nil {
		out = os.Stderr
	}

	al := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(
		encoder(),
		zapcore.AddSync(out),
		al,
	)
	return &Logger{l: zap.New(core, opts...), al: &al}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{l: zap.NewNop()}
}

// FromZap wraps an existing zap logger.
func FromZap(l *zap.Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{l: l}
}

func encoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(
		zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    encodeLevel,
			EncodeTime:     encodeTime,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		})
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + level.CapitalString() + "]")
}

const timeFormat = "2006-01-02 15:04:05.000"

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format(timeFormat) + "]")
}

// SetLevel changes the minimum enabled level. No-op for loggers built
// with Nop or FromZap.
func (l *Logger) SetLevel(level Level) {
	if l.al != nil {
		l.al.SetLevel(level)
	}
}

// Named returns a child logger with name appended to the logger name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), al: l.al}
}

// With returns a child logger carrying fields on every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), al: l.al}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.l.Core().Enabled(level)
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.l.Sync()
}

var std = New(os.Stderr, WarnLevel)

// Default returns the process-wide logger.
func Default() *Logger { return std }

// ReplaceDefault swaps the process-wide logger and returns the previous one.
func ReplaceDefault(l *Logger) *Logger {
	prev := std
	if l == nil {
		l = Nop()
	}
	std = l
	return prev
}
