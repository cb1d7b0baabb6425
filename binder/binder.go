// Package binder decides which sink a plugin's log output goes to.
//
// A Binder starts unbound. Initialize asks the Discoverer which plugin
// owns the running code and looks that name up in the Host. Once the plugin
// is registered the binder binds to it: its sink receives every record and
// its properties configure levels and decoration. Until then output goes
// to the host's default sink with fallback configuration.
//
// Binding is sticky. Only Initialize(true) returns the binder to the
// unbound state, which is what a host does after reloading a plugin.
package binder

import (
	"errors"
	"sync"

	"github.com/philipp01105/pluginlog/config"
	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/handler"
	"github.com/philipp01105/pluginlog/host"
)

// Discoverer names the plugin that owns the running code
type Discoverer interface {
	OwnerName() (string, error)
}

// Host resolves plugin names to plugins and provides the fallback sink
type Host interface {
	Lookup(name string) (*host.Plugin, bool)
	DefaultSink() handler.Handler
}

// DiscoveryError reports that the owning plugin could not be determined.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return "pluginlog: cannot determine owning plugin: " + e.Err.Error()
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

var errNoDiscoverer = errors.New("no discoverer configured")

// Binder holds the sink binding and the configuration derived from it.
// All state changes happen under one write lock.
type Binder struct {
	mu         sync.RWMutex
	discoverer Discoverer
	host       Host
	plugin     *host.Plugin
	resolver   *config.Resolver
}

// New creates an unbound Binder. A nil h uses host.Default() at call time.
func New(d Discoverer, h Host) *Binder {
	return &Binder{
		discoverer: d,
		host:       h,
		resolver:   config.NewResolver(),
	}
}

// Initialize binds to the owning plugin if it is registered. With
// reinitialize set, any existing binding and configuration are dropped
// first, so a discovery failure then leaves the Binder unbound with the
// fallback configuration. Without it, a failure changes nothing.
func (b *Binder) Initialize(reinitialize bool) error {
	if !reinitialize {
		b.mu.RLock()
		bound := b.plugin != nil
		b.mu.RUnlock()
		if bound {
			return nil
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if reinitialize {
		b.plugin = nil
		b.resolver.Reset()
	} else if b.plugin != nil {
		return nil
	}

	if b.discoverer == nil {
		return &DiscoveryError{Err: errNoDiscoverer}
	}
	name, err := b.discoverer.OwnerName()
	if err != nil {
		return &DiscoveryError{Err: err}
	}

	p, ok := b.hostLocked().Lookup(name)
	if !ok || p == nil || p.Handler == nil {
		return nil
	}
	b.plugin = p
	b.resolver.Refresh(p.Properties)
	return nil
}

// CurrentSink returns the bound plugin's sink, or the host default sink.
func (b *Binder) CurrentSink() handler.Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sinkLocked()
}

// Resolve returns the sink, the effective level for name and the
// decoration settings, all read from the same binding state.
func (b *Binder) Resolve(name string) (handler.Handler, core.Level, *config.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	snap := b.resolver.Snapshot()
	return b.sinkLocked(), snap.ResolveLevel(name), snap
}

// Owner returns the name of the bound plugin
func (b *Binder) Owner() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.plugin == nil {
		return "", false
	}
	return b.plugin.Name, true
}

// Bound reports whether a plugin sink is bound
func (b *Binder) Bound() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.plugin != nil
}

// Resolver exposes the configuration resolver. Refreshing it directly
// bypasses the binding lock; use Initialize(true) to reload.
func (b *Binder) Resolver() *config.Resolver {
	return b.resolver
}

func (b *Binder) sinkLocked() handler.Handler {
	if b.plugin != nil {
		return b.plugin.Handler
	}
	if s := b.hostLocked().DefaultSink(); s != nil {
		return s
	}
	return handler.Discard
}

func (b *Binder) hostLocked() Host {
	if b.host != nil {
		return b.host
	}
	return host.Default()
}
