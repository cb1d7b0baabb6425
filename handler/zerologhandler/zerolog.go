// Package zerologhandler provides a sink that forwards records to a zerolog.Logger.
package zerologhandler

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/handler"
)

// LoggerKey is the field carrying the originating logger name
const LoggerKey = "logger"

// Handler forwards records to zerolog
type Handler struct {
	l     zerolog.Logger
	stats *handler.Stats
}

// New wraps l.
func New(l zerolog.Logger) *Handler {
	return &Handler{l: l, stats: handler.NewStats()}
}

// Handle writes the record through zerolog.
func (h *Handler) Handle(r *core.Record) error {
	e := h.l.WithLevel(zerologLevel(r.Level))
	if e == nil {
		return nil
	}
	if !r.Time.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, r.Time)
	}
	if r.LoggerName != "" {
		e = e.Str(LoggerKey, r.LoggerName)
	}
	if r.Caller.Defined {
		e = e.Str(zerolog.CallerFieldName, r.Caller.ShortFile+":"+strconv.Itoa(r.Caller.Line))
	}
	if r.Err != nil {
		e = e.Err(r.Err)
	}
	e.Msg(r.Message)
	h.stats.IncrementProcessed(r.Level)
	return nil
}

// Enabled checks the logger level and the global level
func (h *Handler) Enabled(level core.SinkLevel) bool {
	l := zerologLevel(level)
	return l >= h.l.GetLevel() && l >= zerolog.GlobalLevel()
}

// Stats returns the handler counters
func (h *Handler) Stats() *handler.Stats {
	return h.stats
}

// Close is a no-op; the writer belongs to the caller.
func (h *Handler) Close() error {
	return nil
}

func zerologLevel(level core.SinkLevel) zerolog.Level {
	switch level {
	case core.SinkSevere:
		return zerolog.ErrorLevel
	case core.SinkWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
