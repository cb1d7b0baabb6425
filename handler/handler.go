package handler

import (
	"github.com/philipp01105/pluginlog/core"
)

// Handler is a destination sink for decorated log records
type Handler interface {
	// Handle emits a record. The record is only valid for the duration of
	// the call; handlers that keep it must copy it.
	Handle(r *core.Record) error

	// Enabled reports whether the sink would accept records at level
	Enabled(level core.SinkLevel) bool

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they emit
type StatsProvider interface {
	Stats() *Stats
}

// Func adapts a function to a Handler that accepts every level.
type Func func(r *core.Record) error

// Handle calls f(r)
func (f Func) Handle(r *core.Record) error { return f(r) }

// Enabled always returns true
func (Func) Enabled(core.SinkLevel) bool { return true }

// Close is a no-op
func (Func) Close() error { return nil }

// Discard accepts and drops every record.
var Discard Handler = Func(func(*core.Record) error { return nil })
