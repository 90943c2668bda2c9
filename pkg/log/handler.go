package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// StackHandler is a slog handler that surfaces stack traces carried by
// cockroachdb/errors values attached through ErrAttr.
type StackHandler struct {
	inner slog.Handler
}

// WrapByStackHandler wraps a slog handler. Records holding an error
// attribute gain a stacktrace attribute extracted from the error's safe
// details; all other records pass through untouched.
func WrapByStackHandler(inner slog.Handler) slog.Handler {
	return &StackHandler{inner: inner}
}

func (h *StackHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.inner.Enabled(ctx, l)
}

func (h *StackHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			stacktrace = extractStacktrace(err)
		}
		return false
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return h.inner.Handle(ctx, r)
}

func (h *StackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *StackHandler) WithGroup(g string) slog.Handler {
	return &StackHandler{inner: h.inner.WithGroup(g)}
}

func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
