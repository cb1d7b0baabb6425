// Package sloghandler provides a sink that forwards records to a log/slog
// Handler, so plugin output can join an application's slog pipeline.
//
// Sink levels map to slog.LevelInfo, slog.LevelWarn and slog.LevelError.
// The logger name and error are attached as the "logger" and "error"
// attributes, and the caller program counter is passed through so
// HandlerOptions.AddSource reports the plugin call site.
package sloghandler
