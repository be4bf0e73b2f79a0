// Package pkg provides utilities for bladegen.
package pkg

import (
	"context"
	"errors"
	"log/slog"
)

// TeeHandler is a slog.Handler forwarding every record to several handlers.
// Each handler keeps its own level, so a console sink can stay quiet while
// a file sink records everything.
type TeeHandler struct {
	handlers []slog.Handler
}

// NewTeeHandler returns a handler writing to all of handlers.
func NewTeeHandler(handlers ...slog.Handler) *TeeHandler {
	return &TeeHandler{handlers: handlers}
}

// Enabled implements slog.Handler.
func (t *TeeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle implements slog.Handler.
func (t *TeeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (t *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		handlers = append(handlers, h.WithAttrs(attrs))
	}

	return &TeeHandler{handlers: handlers}
}

// WithGroup implements slog.Handler.
func (t *TeeHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		handlers = append(handlers, h.WithGroup(name))
	}

	return &TeeHandler{handlers: handlers}
}
