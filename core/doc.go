// Package core defines the shared types used across pluginlog.
//
// Level is the five-value severity seen by callers (TRACE through ERROR).
// SinkLevel is the coarser three-value severity understood by destination
// sinks (INFO, WARNING, SEVERE). Level.Sink performs the fixed mapping;
// TRACE and DEBUG both collapse to SinkInfo, which is why the logger adds a
// textual level tag for them.
//
// Record is what a logger hands to a sink: the already decorated message,
// an optional error, the logger name, and best-effort caller information.
// Records are pooled via GetRecord and PutRecord so that the emission path
// does not allocate on every call.
//
// FindCaller walks the goroutine's stack to the first frame outside a set
// of package paths. It never fails; when no frame qualifies it returns an
// undefined CallerInfo and sinks simply omit source attribution.
package core
