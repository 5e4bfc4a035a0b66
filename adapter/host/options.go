package host

// Option configures an Adapter.
type Option func(*options)

type options struct {
	policy   Policy
	reporter Reporter
	metrics  *Metrics
}

func defaultOptions() options {
	return options{policy: PolicyDrop}
}

// WithPolicy selects how records containing a NUL byte are handled.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithReporter replaces the default reporter, which writes a notice through
// the Warn sink.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithMetrics enables Prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
