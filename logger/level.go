package logger

import (
	"github.com/philipp01105/pluginlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel
func ParseLevel(s string) Level {
	if l, ok := core.ParseLevel(s); ok {
		return l
	}
	return InfoLevel
}
