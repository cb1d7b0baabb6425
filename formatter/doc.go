// Package formatter turns logging calls into text.
//
// ArrayFormat implements the "{}" placeholder syntax used by the logger's
// formatted methods. Arguments are substituted left to right; a trailing
// error that no placeholder consumes is split off as the record's error.
// FormatWithErr additionally accepts an explicit error and reports an
// *AmbiguousThrowableError when both are present, rather than picking one.
//
// Line assembles the decorations a logger prepends to every message
// (header, TRACE/DEBUG tag, goroutine, logger name) in a fixed order.
//
// TextFormatter renders a complete core.Record for text sinks such as the
// console handler. It implements both Formatter and WriterFormatter and uses
// a pooled bytes.Buffer with Append-style helpers so the write path does not
// allocate per call. Color directives ("§c" etc.) inside messages are mapped
// to ANSI sequences when Config.Colors is set and passed through otherwise.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
