package log

import "context"

// Logger is the contract the assertion and recovery packages write through.
// It is deliberately narrow: failure reporting needs leveled, fielded
// emission and child loggers carrying bound fields, nothing more. Flushing
// and level introspection belong to the concrete backend (see the zap
// package).
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Level orders severities from least to most severe.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

// String returns the lowercase name of the level, or "unknown" for values
// outside the defined range.
func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// Field is one key/value attribute attached to a log event.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int builds an integer-valued field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Any builds a field holding an arbitrary value. Prefer the typed
// constructors where the value may carry sensitive data; Any serializes
// whatever it is given.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Err builds the conventional "error" field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

type nopLogger struct{}

// NewNop returns a Logger that discards every event. It stands in wherever a
// real backend has not been configured.
//
//nolint:ireturn
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (nopLogger) With(...Field) Logger { return nopLogger{} }
