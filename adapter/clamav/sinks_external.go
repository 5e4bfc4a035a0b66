//go:build cgo && hostlog_external

package clamav

// Link against the host's cli_* functions instead of the stderr fallbacks.

// #cgo CFLAGS: -DHOSTLOG_EXTERNAL_SINKS
import "C"
