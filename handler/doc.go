// Package handler defines the sink contract that decorated log records are
// routed to, and the bookkeeping shared by sink implementations.
//
// A Handler receives one core.Record per accepted logging call. The record
// carries a SinkLevel (INFO, WARNING or SEVERE), the logger name, the fully
// decorated message, an optional error and best-effort caller information.
// Handlers are called synchronously from the logging goroutine and must be
// safe for concurrent use.
//
// Built-in sinks live in subpackages:
//
//   - consolehandler writes text lines to any io.Writer (default: stderr),
//     translating color codes when the writer is a terminal.
//   - sloghandler forwards to a log/slog Handler.
//   - zaphandler forwards to a *zap.Logger.
//   - zerologhandler forwards to a zerolog.Logger.
//   - logrushandler forwards to a *logrus.Logger.
//
// Handlers count processed and failed records per level in Stats. A
// Collector exports a set of Stats to Prometheus.
package handler
