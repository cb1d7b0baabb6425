package core

import (
	"cmp"
	"strings"
)

// Level represents the severity requested by a logging call
type Level int8

const (
	// TraceLevel for the most detailed diagnostic output
	TraceLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sink maps the level onto the coarser sink taxonomy.
// TRACE and DEBUG both collapse to SinkInfo.
func (l Level) Sink() SinkLevel {
	switch {
	case l >= ErrorLevel:
		return SinkSevere
	case l == WarnLevel:
		return SinkWarning
	default:
		return SinkInfo
	}
}

// Compare orders levels by severity. It returns -1, 0 or +1.
func Compare(a, b Level) int {
	return cmp.Compare(a, b)
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
// The second result is false for unrecognized text; callers choose the fallback.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return 0, false
	}
}

// SinkLevel is the three-value severity understood by destination sinks
type SinkLevel int8

const (
	SinkInfo SinkLevel = iota
	SinkWarning
	SinkSevere
)

// String returns the string representation of the sink level
func (l SinkLevel) String() string {
	switch l {
	case SinkInfo:
		return "INFO"
	case SinkWarning:
		return "WARNING"
	case SinkSevere:
		return "SEVERE"
	default:
		return "UNKNOWN"
	}
}
