package slogadapter

import (
	"log/slog"

	"github.com/trickstertwo/hostlog"
)

// SetDefault points slog.Default() at l. Its signature fits
// hostlog.Install hooks, so the swap happens under the install lock:
//
//	hostlog.Install(logger, slogadapter.SetDefault)
//
// slog.SetDefault also redirects the standard log package, which then
// arrives here at Info.
func SetDefault(l *hostlog.Logger) {
	slog.SetDefault(slog.New(NewHandler(l)))
}
