package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor reads one attribute from a context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler appends extracted attributes to each record. An attribute
// already set on the record or on the logger with the same key wins.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	// set holds top-level keys added through WithAttrs.
	set     []string
	grouped bool
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) *contextHandler {
	return &contextHandler{
		next: next,
		extractors: slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
			return ex == nil
		}),
	}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}

	var own []string
	rec.Attrs(func(a slog.Attr) bool {
		own = append(own, a.Key)
		return true
	})

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || attr.Key == "" {
			continue
		}
		if slices.Contains(own, attr.Key) || (!h.grouped && slices.Contains(h.set, attr.Key)) {
			continue
		}
		rec.AddAttrs(attr)
		own = append(own, attr.Key)
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone(h.next.WithAttrs(attrs))
	if !h.grouped {
		for _, a := range attrs {
			c.set = append(c.set, a.Key)
		}
	}
	return c
}

// WithGroup nests extracted attributes too, so keys inside the group no
// longer collide with top-level ones.
func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone(h.next.WithGroup(name))
	c.grouped = true
	c.set = nil
	return c
}

func (h *contextHandler) clone(next slog.Handler) *contextHandler {
	return &contextHandler{
		next:       next,
		extractors: h.extractors,
		set:        slices.Clone(h.set),
		grouped:    h.grouped,
	}
}
