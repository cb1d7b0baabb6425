package config

import (
	"sync"

	"github.com/philipp01105/pluginlog/core"
)

// Resolver holds the most recently loaded Snapshot.
type Resolver struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewResolver returns a Resolver holding Defaults().
func NewResolver() *Resolver {
	return &Resolver{snap: Defaults()}
}

// Refresh rebuilds the snapshot from src and replaces the current one.
func (r *Resolver) Refresh(src PropertySource) *Snapshot {
	s := Load(src)
	r.mu.Lock()
	r.snap = s
	r.mu.Unlock()
	return s
}

// Reset restores the fallback configuration.
func (r *Resolver) Reset() {
	r.Refresh(nil)
}

// Snapshot returns the current snapshot
func (r *Resolver) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// ResolveLevel resolves the effective level for name against the current snapshot.
func (r *Resolver) ResolveLevel(name string) core.Level {
	return r.Snapshot().ResolveLevel(name)
}
