package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// levelSourceHandler attaches a source location to records whose level is in
// the configured set. The wrapped handler must be built with AddSource off.
type levelSourceHandler struct {
	next   slog.Handler
	levels map[slog.Level]struct{}
}

// NewLevelSourceHandler wraps next so that only records at the given levels
// carry a source attribute.
func NewLevelSourceHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	set := make(map[slog.Level]struct{}, len(levels))
	for _, lvl := range levels {
		set[lvl] = struct{}{}
	}
	return &levelSourceHandler{next: next, levels: set}
}

func (h *levelSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *levelSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if _, ok := h.levels[r.Level]; ok && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *levelSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelSourceHandler{next: h.next.WithAttrs(attrs), levels: h.levels}
}

func (h *levelSourceHandler) WithGroup(name string) slog.Handler {
	return &levelSourceHandler{next: h.next.WithGroup(name), levels: h.levels}
}
