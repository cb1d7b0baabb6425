// Package zaphandler provides a sink that forwards records to a *zap.Logger.
package zaphandler

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/handler"
)

// LoggerKey is the field carrying the originating logger name
const LoggerKey = "logger"

// Handler forwards records to zap
type Handler struct {
	l     *zap.Logger
	stats *handler.Stats
	sync  bool
}

// Option configures a Handler
type Option func(*Handler)

// WithSyncOnClose makes Close flush the zap logger.
func WithSyncOnClose() Option {
	return func(h *Handler) { h.sync = true }
}

// New wraps l. A nil l uses zap.L().
func New(l *zap.Logger, opts ...Option) *Handler {
	if l == nil {
		l = zap.L()
	}
	h := &Handler{l: l, stats: handler.NewStats()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle writes the record through zap, keeping the record's timestamp and caller.
func (h *Handler) Handle(r *core.Record) error {
	ce := h.l.Check(zapLevel(r.Level), r.Message)
	if ce == nil {
		return nil
	}
	ce.Time = r.Time
	if r.Caller.Defined {
		ce.Caller = zapcore.NewEntryCaller(r.Caller.PC, r.Caller.File, r.Caller.Line, true)
		ce.Caller.Function = r.Caller.Function
	}

	fields := make([]zap.Field, 0, 2)
	if r.LoggerName != "" {
		fields = append(fields, zap.String(LoggerKey, r.LoggerName))
	}
	if r.Err != nil {
		fields = append(fields, zap.Error(r.Err))
	}
	ce.Write(fields...)
	h.stats.IncrementProcessed(r.Level)
	return nil
}

// Enabled asks the zap core
func (h *Handler) Enabled(level core.SinkLevel) bool {
	return h.l.Core().Enabled(zapLevel(level))
}

// Stats returns the handler counters
func (h *Handler) Stats() *handler.Stats {
	return h.stats
}

// Close flushes the logger when WithSyncOnClose was given.
func (h *Handler) Close() error {
	if !h.sync {
		return nil
	}
	return h.l.Sync()
}

// Config controls NewProduction
type Config struct {
	// Level is the lowest sink level written
	Level core.SinkLevel
	// ServiceName is attached to every line when set
	ServiceName string
	// OutputPaths defaults to stderr
	OutputPaths []string
}

// NewProduction builds a console-encoded zap logger with ISO8601 timestamps,
// capital level names and caller information, and wraps it.
func NewProduction(cfg Config) (*Handler, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}
	initial := map[string]interface{}{
		"pid": os.Getpid(),
	}
	if cfg.ServiceName != "" {
		initial["service"] = cfg.ServiceName
	}

	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoderCfg,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     initial,
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return New(l, WithSyncOnClose()), nil
}

func zapLevel(level core.SinkLevel) zapcore.Level {
	switch level {
	case core.SinkSevere:
		return zapcore.ErrorLevel
	case core.SinkWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
