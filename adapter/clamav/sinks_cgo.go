//go:build cgo

package clamav

/*
#include <stdbool.h>
#include "sinks.h"
*/
import "C"

import (
	"unsafe"

	"github.com/trickstertwo/hostlog/adapter/host"
)

// cstr borrows the address of a NUL-terminated Go buffer for the duration
// of one C call. The buffer holds no Go pointers, so cgo allows passing it.
func cstr(text []byte) *C.char {
	return (*C.char)(unsafe.Pointer(unsafe.SliceData(text)))
}

var table = host.Table{
	Error: host.SinkFunc(func(text []byte) { C.hostlog_errmsg(cstr(text)) }),
	Warn:  host.SinkFunc(func(text []byte) { C.hostlog_warnmsg(cstr(text)) }),
	Info:  host.SinkFunc(func(text []byte) { C.hostlog_infomsg(cstr(text)) }),
	Debug: host.SinkFunc(func(text []byte) { C.hostlog_dbgmsg(cstr(text)) }),
}

// Table returns the sinks bound to the host's C output functions.
func Table() host.Table { return table }

// clrs_log_init is the C entry point for Init.
//
//export clrs_log_init
//nolint:revive // intentional snake_case to match the C symbol
func clrs_log_init() C.bool {
	return C.bool(Init())
}
