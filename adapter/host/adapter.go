// Package host bridges hostlog records to host-provided output functions
// that accept a single NUL-terminated string.
//
// A record flows through three steps: the Dispatcher checks that its level
// has a sink, Render turns it into an owned NUL-terminated buffer, and the
// Dispatcher calls the sink with that buffer. The buffer is released as soon
// as the sink returns. Nothing is queued or retained.
package host

import (
	"github.com/trickstertwo/hostlog"
)

// Adapter implements hostlog.Adapter on top of a sink Table.
type Adapter struct {
	d        *Dispatcher
	policy   Policy
	reporter Reporter
	metrics  *Metrics
}

var _ hostlog.Adapter = (*Adapter)(nil)

// New creates an adapter for table.
func New(table Table, opts ...Option) *Adapter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		if table.Warn != nil {
			o.reporter = sinkReporter{sink: table.Warn}
		} else {
			o.reporter = ReporterFunc(func(Drop) {})
		}
	}
	return &Adapter{
		d:        NewDispatcher(table),
		policy:   o.policy,
		reporter: o.reporter,
		metrics:  o.metrics,
	}
}

// Log renders rec and delivers it to the sink for its level.
// Records without a sink are dropped before rendering.
func (a *Adapter) Log(rec hostlog.Record) {
	if !a.d.Handles(rec.Level) {
		a.metrics.incDropped(ReasonNoSink)
		return
	}

	msg, err := Render(rec)
	if err != nil {
		msg = a.onFormatError(rec, err)
		if msg == nil {
			return
		}
	}
	defer msg.Release()

	a.d.Dispatch(rec.Level, msg)
	a.metrics.incDispatched(levelLabel(rec.Level))
}

// onFormatError applies the configured policy to a failed render. It returns the
// message to deliver instead, or nil.
func (a *Adapter) onFormatError(rec hostlog.Record, err error) *Message {
	switch a.policy {
	case PolicyAbort:
		panic(err)
	case PolicyTruncate:
		a.metrics.incDropped(ReasonTruncatedTerminator)
		a.reporter.Report(Drop{At: rec.At, Level: rec.Level, Err: err, Truncated: true})
		return RenderTruncated(rec)
	default:
		a.metrics.incDropped(ReasonEmbeddedTerminator)
		a.reporter.Report(Drop{At: rec.At, Level: rec.Level, Err: err})
		return nil
	}
}

// levelLabel names the sink a level is routed to.
func levelLabel(l hostlog.Level) string {
	switch {
	case l >= hostlog.LevelError:
		return hostlog.LevelError.String()
	case l >= hostlog.LevelWarn:
		return hostlog.LevelWarn.String()
	case l >= hostlog.LevelInfo:
		return hostlog.LevelInfo.String()
	default:
		return hostlog.LevelDebug.String()
	}
}
