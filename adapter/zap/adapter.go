// Package zapadapter emulates the host's output functions on a zap logger.
//
// It is the sink table used when the adapter is built without cgo, and lets
// pure-Go programs that embed the host logic drive the same pipeline.
package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/hostlog/adapter/host"
)

// Sink writes host messages to a zap logger at a fixed level.
//
// The NUL terminator and the single line terminator appended by the
// renderer are stripped; zap adds its own line ending.
type Sink struct {
	l     *zap.Logger
	level zapcore.Level
}

// NewSink creates a sink for level on l.
func NewSink(l *zap.Logger, level zapcore.Level) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, level: level}
}

// Emit uses Logger.Check so disabled levels never allocate the message.
func (s *Sink) Emit(text []byte) {
	ce := s.l.Check(s.level, "")
	if ce == nil {
		return
	}
	ce.Message = string(trimText(text))
	ce.Write()
}

// Table maps each host severity to the zap level of the same name.
func Table(l *zap.Logger) host.Table {
	return host.Table{
		Error: NewSink(l, zapcore.ErrorLevel),
		Warn:  NewSink(l, zapcore.WarnLevel),
		Info:  NewSink(l, zapcore.InfoLevel),
		Debug: NewSink(l, zapcore.DebugLevel),
	}
}

func trimText(text []byte) []byte {
	if n := len(text); n > 0 && text[n-1] == 0 {
		text = text[:n-1]
	}
	if n := len(text); n > 0 && text[n-1] == '\n' {
		text = text[:n-1]
	}
	return text
}
