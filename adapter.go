package hostlog

import "time"

// Adapter is the logging backend Strategy (e.g., the host sink bridge).
// Log is called synchronously, once per record that passed the Logger's
// threshold, and must not retain rec.Args after it returns.
type Adapter interface {
	Log(rec Record)
}

// Record is a single log request on its way to an Adapter.
//
// When Format is non-empty the text is produced from Format and Args with
// fmt semantics. Otherwise Message is used verbatim.
type Record struct {
	Level   Level
	At      time.Time
	Message string
	Format  string
	Args    []any
}

// Formatted reports whether the record carries a format string.
func (r Record) Formatted() bool { return r.Format != "" }

type nopAdapter struct{}

func (nopAdapter) Log(Record) {}
