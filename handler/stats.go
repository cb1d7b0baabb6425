package handler

import (
	"sync/atomic"

	"github.com/philipp01105/pluginlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per sink level
	ProcessedInfo    atomic.Uint64
	ProcessedWarning atomic.Uint64
	ProcessedSevere  atomic.Uint64
	// FailedTotal counts records the sink could not emit
	FailedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// Record counts the outcome of one Handle call.
func (s *Stats) Record(level core.SinkLevel, err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed(level)
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.SinkLevel) {
	if c := s.processed(level); c != nil {
		c.Add(1)
	}
}

// IncrementFailed atomically increments the failure counter
func (s *Stats) IncrementFailed() {
	s.FailedTotal.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.SinkLevel) uint64 {
	if c := s.processed(level); c != nil {
		return c.Load()
	}
	return 0
}

// GetTotalProcessed returns the total processed across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	return s.ProcessedInfo.Load() + s.ProcessedWarning.Load() + s.ProcessedSevere.Load()
}

// GetFailed returns the failure count
func (s *Stats) GetFailed() uint64 {
	return s.FailedTotal.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.ProcessedInfo.Store(0)
	s.ProcessedWarning.Store(0)
	s.ProcessedSevere.Store(0)
	s.FailedTotal.Store(0)
}

func (s *Stats) processed(level core.SinkLevel) *atomic.Uint64 {
	switch level {
	case core.SinkInfo:
		return &s.ProcessedInfo
	case core.SinkWarning:
		return &s.ProcessedWarning
	case core.SinkSevere:
		return &s.ProcessedSevere
	default:
		return nil
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal map[core.SinkLevel]uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: map[core.SinkLevel]uint64{
			core.SinkInfo:    s.GetProcessed(core.SinkInfo),
			core.SinkWarning: s.GetProcessed(core.SinkWarning),
			core.SinkSevere:  s.GetProcessed(core.SinkSevere),
		},
		FailedTotal: s.GetFailed(),
	}
}
