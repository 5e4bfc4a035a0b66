package hostlog

import (
	"sync"
	"sync/atomic"
)

// Registrar holds the single installed Logger of a process (or of a test).
//
// The transition from unregistered to registered happens at most once.
// Installs are serialized by mu; reads go through an atomic load and never
// block.
type Registrar struct {
	mu      sync.Mutex
	current atomic.Pointer[Logger]
}

// NewRegistrar returns an unregistered Registrar.
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// Install makes l the registered logger and runs hooks while still holding
// the install lock. It returns false, without running hooks, if a logger is
// already registered or l is nil.
func (r *Registrar) Install(l *Logger, hooks ...func(*Logger)) bool {
	if l == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current.Load() != nil {
		return false
	}
	r.current.Store(l)
	for _, h := range hooks {
		h(l)
	}
	return true
}

// Registered reports whether Install has succeeded.
func (r *Registrar) Registered() bool {
	return r.current.Load() != nil
}

// Logger returns the registered logger, or a logger that drops everything.
func (r *Registrar) Logger() *Logger {
	if l := r.current.Load(); l != nil {
		return l
	}
	return nopLogger
}

// Threshold returns the registered threshold, DefaultThreshold if none.
func (r *Registrar) Threshold() Level {
	if l := r.current.Load(); l != nil {
		return l.minLevel
	}
	return DefaultThreshold
}

// Enabled reports whether level passes Threshold.
func (r *Registrar) Enabled(level Level) bool {
	return level >= r.Threshold()
}
