package host

import "github.com/trickstertwo/hostlog"

// Sink is one host output function.
//
// text is NUL-terminated and only valid until Emit returns; implementations
// must not retain it. Sinks cannot fail from the adapter's point of view.
type Sink interface {
	Emit(text []byte)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text []byte)

func (f SinkFunc) Emit(text []byte) { f(text) }

// Table maps the four deliverable severities to host sinks. Trace has no
// slot and is never delivered. A nil slot drops its level.
type Table struct {
	Error Sink
	Warn  Sink
	Info  Sink
	Debug Sink
}

// Lookup returns the sink for level. Levels between the named ones use the
// nearest named level below them; anything under Debug has no sink.
func (t Table) Lookup(level hostlog.Level) (Sink, bool) {
	var s Sink
	switch {
	case level >= hostlog.LevelError:
		s = t.Error
	case level >= hostlog.LevelWarn:
		s = t.Warn
	case level >= hostlog.LevelInfo:
		s = t.Info
	case level >= hostlog.LevelDebug:
		s = t.Debug
	}
	return s, s != nil
}
