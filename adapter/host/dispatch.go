package host

import "github.com/trickstertwo/hostlog"

// Dispatcher hands rendered messages to the sink of their level.
// Its table is copied at construction and never changes, so concurrent
// Dispatch calls need no locking.
type Dispatcher struct {
	table Table
}

func NewDispatcher(t Table) *Dispatcher {
	return &Dispatcher{table: t}
}

// Handles reports whether level has a sink.
func (d *Dispatcher) Handles(level hostlog.Level) bool {
	_, ok := d.table.Lookup(level)
	return ok
}

// Dispatch calls the sink for level exactly once and returns after it does.
// Levels without a sink are dropped and Dispatch returns false.
func (d *Dispatcher) Dispatch(level hostlog.Level, msg *Message) bool {
	s, ok := d.table.Lookup(level)
	if !ok || msg == nil {
		return false
	}
	s.Emit(msg.terminated())
	return true
}
