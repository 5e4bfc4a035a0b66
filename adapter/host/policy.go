package host

import (
	"fmt"
	"time"

	"github.com/trickstertwo/hostlog"
)

// Policy decides what happens to a record whose text contains a NUL byte.
type Policy uint8

const (
	// PolicyDrop discards the record and reports it. Default.
	PolicyDrop Policy = iota
	// PolicyTruncate delivers the text up to the first NUL and reports it.
	PolicyTruncate
	// PolicyAbort panics with the *FormatError.
	PolicyAbort
)

func (p Policy) String() string {
	switch p {
	case PolicyDrop:
		return "drop"
	case PolicyTruncate:
		return "truncate"
	case PolicyAbort:
		return "abort"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Drop describes a record that was not delivered as rendered.
type Drop struct {
	At        time.Time
	Level     hostlog.Level
	Err       error
	Truncated bool // the prefix before the NUL was delivered
}

// Reporter is notified of every Drop. Implementations must be safe for
// concurrent use and must not log through the reporting adapter.
type Reporter interface {
	Report(d Drop)
}

// ReporterFunc adapter.
type ReporterFunc func(Drop)

func (f ReporterFunc) Report(d Drop) { f(d) }

// sinkReporter writes a one-line notice through a host sink.
type sinkReporter struct {
	sink Sink
}

func (r sinkReporter) Report(d Drop) {
	action := "dropped"
	if d.Truncated {
		action = "truncated"
	}
	b := make([]byte, 0, 96)
	b = fmt.Appendf(b, "hostlog: %s %s record: %v\n", action, d.Level, d.Err)
	b = append(b, 0)
	r.sink.Emit(b)
}
