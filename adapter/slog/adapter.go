// Package slogadapter lets code written against log/slog log through a
// hostlog.Logger.
//
// Only the record message crosses to the host. Attributes and groups are
// accepted so that existing call sites keep working, but they are not
// serialized.
package slogadapter

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/hostlog"
)

// Handler implements slog.Handler on top of a hostlog.Logger.
type Handler struct {
	l *hostlog.Logger // nil: resolve hostlog.L() per call
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a handler for l. With a nil l the handler follows the
// process logger, so it can be created before registration.
func NewHandler(l *hostlog.Logger) *Handler {
	return &Handler{l: l}
}

func (h *Handler) logger() *hostlog.Logger {
	if h.l != nil {
		return h.l
	}
	return hostlog.L()
}

// FromSlog maps a slog level onto hostlog's scale. The two share numbering,
// so slog.LevelDebug-4 is hostlog.LevelTrace.
func FromSlog(l slog.Level) hostlog.Level {
	return hostlog.Level(l)
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger().Enabled(FromSlog(level))
}

// Handle forwards the record message verbatim.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	h.logger().Log(hostlog.Record{
		Level:   FromSlog(record.Level),
		At:      record.Time,
		Message: record.Message,
	})
	return nil
}

// WithAttrs returns the handler unchanged in behavior; attributes are not
// serialized.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	child := *h
	return &child
}

// WithGroup is the group counterpart of WithAttrs.
func (h *Handler) WithGroup(_ string) slog.Handler {
	child := *h
	return &child
}
