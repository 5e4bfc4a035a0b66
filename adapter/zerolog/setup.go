package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/hostlog"
	"github.com/trickstertwo/hostlog/adapter/host"
)

// Config is an explicit, code-first configuration for a zerolog-emulated host.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stderr
	Console           bool      // pretty console output instead of JSON
	ConsoleTimeFormat string    // only used if Console==true; default time.RFC3339Nano
	HostOptions       []host.Option
}

// NewLogger builds the zerolog.Logger that stands in for the host's output.
func NewLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		w = cw
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Use builds a zerolog-emulated host adapter from Config and registers it as
// the process logger. It returns false if a logger was already registered.
func Use(cfg Config) bool {
	return hostlog.Register(host.New(Table(NewLogger(cfg)), cfg.HostOptions...))
}
