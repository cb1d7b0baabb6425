// Package consolehandler provides the console sink that writes formatted
// records to any io.Writer (default: os.Stderr).
//
// The handler is synchronous: a record is on the writer by the time Handle
// returns, so nothing is lost if the process exits right after logging.
// Writes are serialized with a mutex unless the writer is known to be safe
// for concurrent use.
//
// Color codes in messages ("§c", "§r", ...) are translated to ANSI escape
// sequences when the writer is a terminal, and left untouched otherwise.
// ColorAlways and ColorNever override the detection.
package consolehandler
