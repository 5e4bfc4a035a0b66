//go:build !cgo

package clamav

import (
	"sync"

	"github.com/trickstertwo/hostlog/adapter/host"
	zapadapter "github.com/trickstertwo/hostlog/adapter/zap"
)

// Without cgo there is no host to call; a zap console logger on stderr
// stands in for it.
var table = sync.OnceValue(func() host.Table {
	return zapadapter.Table(zapadapter.NewLogger(zapadapter.Config{}))
})

// Table returns the zap-emulated host sinks.
func Table() host.Table { return table() }
