package hostlog

import (
	"github.com/trickstertwo/xclock"
)

// Logger filters records against a fixed threshold and hands the survivors
// to its Adapter. It holds no mutable state and is safe for concurrent use.
type Logger struct {
	adapter  Adapter
	minLevel Level
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	return &Logger{
		adapter:  cfg.Adapter,
		minLevel: cfg.MinLevel,
	}
}

// nopLogger is what L() hands out before anything is registered.
var nopLogger = &Logger{adapter: nopAdapter{}, minLevel: DefaultThreshold}

// Enabled reports whether logs at 'level' would be passed to the adapter.
// Use to avoid formatting arguments in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

// Threshold returns the least severe level this logger accepts.
func (l *Logger) Threshold() Level { return l.minLevel }

// Level entry points returning fluent builders.

func (l *Logger) Trace() Event { return Event{l: l, level: LevelTrace} }
func (l *Logger) Debug() Event { return Event{l: l, level: LevelDebug} }
func (l *Logger) Info() Event  { return Event{l: l, level: LevelInfo} }
func (l *Logger) Warn() Event  { return Event{l: l, level: LevelWarn} }
func (l *Logger) Error() Event { return Event{l: l, level: LevelError} }

// Log forwards rec to the adapter when its level is enabled. A zero At is
// stamped from xclock.
func (l *Logger) Log(rec Record) {
	if !l.Enabled(rec.Level) {
		return
	}
	if rec.At.IsZero() {
		rec.At = xclock.Now()
	}
	l.adapter.Log(rec)
}
