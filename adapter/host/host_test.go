package host

import (
	"bytes"
	"sync"

	"github.com/trickstertwo/hostlog"
)

// recSink records copies of everything it receives. It checks the
// NUL-terminated contract on every call.
type recSink struct {
	mu           sync.Mutex
	name         string
	got          []string
	unterminated int
}

func (s *recSink) Emit(text []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(text) == 0 || text[len(text)-1] != 0 || bytes.IndexByte(text[:len(text)-1], 0) >= 0 {
		s.unterminated++
		return
	}
	s.got = append(s.got, string(text[:len(text)-1]))
}

func (s *recSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.got...)
}

type recTable struct {
	errs, warn, info, debug *recSink
}

func newRecTable() *recTable {
	return &recTable{
		errs:  &recSink{name: "error"},
		warn:  &recSink{name: "warn"},
		info:  &recSink{name: "info"},
		debug: &recSink{name: "debug"},
	}
}

func (r *recTable) table() Table {
	return Table{Error: r.errs, Warn: r.warn, Info: r.info, Debug: r.debug}
}

func (r *recTable) all() []*recSink {
	return []*recSink{r.errs, r.warn, r.info, r.debug}
}

func (r *recTable) sinkFor(level hostlog.Level) *recSink {
	switch level {
	case hostlog.LevelError:
		return r.errs
	case hostlog.LevelWarn:
		return r.warn
	case hostlog.LevelInfo:
		return r.info
	case hostlog.LevelDebug:
		return r.debug
	}
	return nil
}

func (r *recTable) total() int {
	n := 0
	for _, s := range r.all() {
		n += len(s.messages())
	}
	return n
}
