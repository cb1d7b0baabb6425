// Package logrushandler provides a sink that forwards records to a *logrus.Logger.
package logrushandler

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/handler"
)

// Field keys added to forwarded entries
const (
	LoggerKey = "logger"
	SourceKey = "source"
)

// Handler forwards records to logrus
type Handler struct {
	l     *logrus.Logger
	stats *handler.Stats
}

// New wraps l. A nil l uses logrus.StandardLogger().
func New(l *logrus.Logger) *Handler {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Handler{l: l, stats: handler.NewStats()}
}

// Handle writes the record through logrus.
func (h *Handler) Handle(r *core.Record) error {
	level := logrusLevel(r.Level)
	if !h.l.IsLevelEnabled(level) {
		return nil
	}

	e := logrus.NewEntry(h.l)
	if !r.Time.IsZero() {
		e = e.WithTime(r.Time)
	}
	if r.LoggerName != "" {
		e = e.WithField(LoggerKey, r.LoggerName)
	}
	if r.Err != nil {
		e = e.WithError(r.Err)
	}
	if r.Caller.Defined {
		// logrus replaces Entry.Caller with its own frame, so the plugin
		// call site travels as a field
		e = e.WithField(SourceKey, r.Caller.ShortFile+":"+strconv.Itoa(r.Caller.Line))
	}
	e.Log(level, r.Message)
	h.stats.IncrementProcessed(r.Level)
	return nil
}

// Enabled asks the logrus logger
func (h *Handler) Enabled(level core.SinkLevel) bool {
	return h.l.IsLevelEnabled(logrusLevel(level))
}

// Stats returns the handler counters
func (h *Handler) Stats() *handler.Stats {
	return h.stats
}

// Close is a no-op; the output belongs to the caller.
func (h *Handler) Close() error {
	return nil
}

func logrusLevel(level core.SinkLevel) logrus.Level {
	switch level {
	case core.SinkSevere:
		return logrus.ErrorLevel
	case core.SinkWarning:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
