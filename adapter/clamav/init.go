// Package clamav installs hostlog as the logging backend of a host process
// that exposes cli_errmsg, cli_warnmsg, cli_infomsg_simple and cli_dbgmsg.
//
// Build tags:
//
//	cgo                    sinks call the C functions (default when cgo is on)
//	cgo,hostlog_external   the cli_* symbols come from the host at link time;
//	                       otherwise built-in fallbacks print to stderr
//	!cgo                   sinks log through zap on stderr
//
// The host calls clrs_log_init (or Go code calls Init) once during
// startup, before it expects any record to be delivered.
package clamav

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/hostlog"
	"github.com/trickstertwo/hostlog/adapter/host"
	slogadapter "github.com/trickstertwo/hostlog/adapter/slog"
)

// Init registers the host adapter as the process logger with the Debug
// floor and routes slog.Default() through it. Counters are registered on
// prometheus.DefaultRegisterer.
//
// Only the first call in a process returns true. Every later call, from any
// goroutine, returns false and changes nothing.
func Init(opts ...host.Option) bool {
	if hostlog.Registered() {
		return false
	}
	opts = append([]host.Option{host.WithMetrics(host.NewMetrics(prometheus.DefaultRegisterer))}, opts...)
	l, err := hostlog.NewBuilder().
		WithAdapter(host.New(Table(), opts...)).
		WithMinLevel(hostlog.DefaultThreshold).
		Build()
	if err != nil {
		return false
	}
	return hostlog.Install(l, slogadapter.SetDefault)
}
