// Package logging configures slog: JSON on stdout, and ERROR records copied
// into the system_logs table once a database is available.
package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup installs a JSON stdout logger. Development builds log at DEBUG.
func Setup(appEnv string) {
	slog.SetDefault(slog.New(stdoutHandler(appEnv)))
}

// AttachDB keeps logging to stdout and also persists ERROR records to db.
// Call Stop on the returned handler during shutdown to flush the buffer.
func AttachDB(appEnv string, db *gorm.DB) *DBHandler {
	dbHandler := NewDBHandler(db)
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(appEnv), dbHandler)))
	return dbHandler
}

func stdoutHandler(appEnv string) slog.Handler {
	level := slog.LevelInfo
	if appEnv == "development" {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

// MultiHandler fans a record out to every handler enabled for its level.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every handler even if one of them fails.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, record.Level) {
			errs = append(errs, h.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m *MultiHandler) each(fn func(slog.Handler) slog.Handler) *MultiHandler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = fn(h)
	}
	return &MultiHandler{handlers: handlers}
}
