package host

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Drop reasons used as the "reason" label.
const (
	ReasonNoSink              = "no_sink"
	ReasonEmbeddedTerminator  = "embedded_terminator"
	ReasonTruncatedTerminator = "truncated_terminator"
)

// Metrics counts records crossing (or failing to cross) the boundary.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	dispatched *prometheus.CounterVec
	dropped    *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg. Counters that
// are already registered on reg are reused. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostlog",
			Subsystem: "adapter",
			Name:      "dispatched_total",
			Help:      "Records delivered to a host sink",
		}, []string{"level"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostlog",
			Subsystem: "adapter",
			Name:      "dropped_total",
			Help:      "Records not delivered as rendered",
		}, []string{"reason"}),
	}
	if reg != nil {
		m.dispatched = register(reg, m.dispatched)
		m.dropped = register(reg, m.dropped)
	}
	return m
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func (m *Metrics) incDispatched(level string) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(level).Inc()
}

func (m *Metrics) incDropped(reason string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(reason).Inc()
}

// Dispatched returns the counter for level, for inspection in tests and
// exporters.
func (m *Metrics) Dispatched(level string) prometheus.Counter {
	return m.dispatched.WithLabelValues(level)
}

// Dropped returns the counter for reason.
func (m *Metrics) Dropped(reason string) prometheus.Counter {
	return m.dropped.WithLabelValues(reason)
}
