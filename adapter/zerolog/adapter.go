package zerologadapter

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/hostlog/adapter/host"
)

// Sink writes host messages to a zerolog.Logger at a fixed level.
//
// Optimizations:
//   - Fast pre-check using GetLevel() to avoid allocating zerolog.Event when
//     the level is disabled.
//   - Uses Logger.WithLevel(...) so each sink carries its level once.
type Sink struct {
	l     zerolog.Logger
	level zerolog.Level
}

func NewSink(l zerolog.Logger, level zerolog.Level) *Sink {
	return &Sink{l: l, level: level}
}

// Emit strips the NUL and the renderer's line terminator; zerolog writes
// its own newline.
func (s *Sink) Emit(text []byte) {
	if s.level < s.l.GetLevel() {
		return
	}
	s.l.WithLevel(s.level).Msg(string(trimText(text)))
}

// Table maps each host severity to the zerolog level of the same name.
func Table(l zerolog.Logger) host.Table {
	return host.Table{
		Error: NewSink(l, zerolog.ErrorLevel),
		Warn:  NewSink(l, zerolog.WarnLevel),
		Info:  NewSink(l, zerolog.InfoLevel),
		Debug: NewSink(l, zerolog.DebugLevel),
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
