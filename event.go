package hostlog

// Event is a fluent builder for a single log entry.
// API: Logger().Info().Msgf("scanned %d files", n)
type Event struct {
	l     *Logger
	level Level
}

// Enabled reports whether Msg/Msgf would reach the adapter.
func (e Event) Enabled() bool { return e.l.Enabled(e.level) }

// Msg emits msg verbatim; '%' has no special meaning.
func (e Event) Msg(msg string) {
	e.l.Log(Record{Level: e.level, Message: msg})
}

// Msgf emits a message rendered from format and args. Rendering happens in
// the adapter, so disabled levels never pay for it.
func (e Event) Msgf(format string, args ...any) {
	if format == "" {
		e.Msg("")
		return
	}
	e.l.Log(Record{Level: e.level, Format: format, Args: args})
}
