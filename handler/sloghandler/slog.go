package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/handler"
)

// Attribute keys added to every forwarded record
const (
	LoggerKey = "logger"
	ErrorKey  = "error"
)

// Handler forwards records to a slog.Handler
type Handler struct {
	h     slog.Handler
	stats *handler.Stats
}

// New wraps h. A nil h uses slog.Default().Handler().
func New(h slog.Handler) *Handler {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &Handler{h: h, stats: handler.NewStats()}
}

// Handle converts the record to a slog.Record and passes it on.
func (s *Handler) Handle(r *core.Record) error {
	var pc uintptr
	if r.Caller.Defined {
		pc = r.Caller.PC
	}

	rec := slog.NewRecord(r.Time, slogLevel(r.Level), r.Message, pc)
	if r.LoggerName != "" {
		rec.AddAttrs(slog.String(LoggerKey, r.LoggerName))
	}
	if r.Err != nil {
		rec.AddAttrs(slog.Any(ErrorKey, r.Err))
	}

	err := s.h.Handle(context.Background(), rec)
	s.stats.Record(r.Level, err)
	return err
}

// Enabled asks the wrapped handler
func (s *Handler) Enabled(level core.SinkLevel) bool {
	return s.h.Enabled(context.Background(), slogLevel(level))
}

// Stats returns the handler counters
func (s *Handler) Stats() *handler.Stats {
	return s.stats
}

// Close is a no-op; slog handlers have no lifecycle.
func (s *Handler) Close() error {
	return nil
}

// slogLevel converts a sink level to a slog.Level.
func slogLevel(level core.SinkLevel) slog.Level {
	switch level {
	case core.SinkSevere:
		return slog.LevelError
	case core.SinkWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
