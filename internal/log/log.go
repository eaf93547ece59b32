// Package log wires log/slog for the tally tool. All diagnostics go to
// stderr, so the report on stdout stays machine readable.
package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
)

// New returns a logger writing JSON lines to stderr. Verbose enables the
// debug level. The returned logger resolves attributes attached to the
// context via ContextAttrs.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	base := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(NewContextHandler(base))
}

type ctxKey struct{}

// ContextAttrs returns a context carrying the given attributes. Every
// *Context logging call routed through the ContextHandler appends them to
// the record. Attributes already present in ctx are kept.
func ContextAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		attrs = append(slices.Clip(existing), attrs...)
	}
	return context.WithValue(ctx, ctxKey{}, attrs)
}

// ContextHandler decorates a slog.Handler with attributes stored in the
// context by ContextAttrs.
type ContextHandler struct {
	base slog.Handler
}

func NewContextHandler(base slog.Handler) slog.Handler {
	return ContextHandler{base: base}
}

func (h ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok && len(attrs) > 0 {
		rec = rec.Clone()
		rec.AddAttrs(attrs...)
	}
	return h.base.Handle(ctx, rec)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{base: h.base.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{base: h.base.WithGroup(name)}
}
