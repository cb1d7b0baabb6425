// Package host is an in-memory stand-in for the process that loads plugins.
// It maps plugin names to the sink and configuration the host assigned to
// each plugin, and owns the default sink used for everything else.
package host

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/pluginlog/config"
	"github.com/philipp01105/pluginlog/handler"
	"github.com/philipp01105/pluginlog/handler/consolehandler"
)

var (
	// ErrInvalidPlugin is returned when registering a plugin without a name or sink
	ErrInvalidPlugin = errors.New("host: plugin needs a name and a handler")
	// ErrDuplicatePlugin is returned when the name is already registered
	ErrDuplicatePlugin = errors.New("host: plugin already registered")
)

// Plugin is a loaded plugin as seen by the logging layer
type Plugin struct {
	Name string
	// Handler is the plugin's own sink
	Handler handler.Handler
	// Properties holds the plugin's slf4j.* configuration, may be nil
	Properties config.PropertySource
}

// Registry tracks registered plugins
type Registry struct {
	mu          sync.RWMutex
	plugins     map[string]*Plugin
	defaultSink handler.Handler
}

// NewRegistry creates a registry. A nil defaultSink is replaced by a
// console handler writing to stderr.
func NewRegistry(defaultSink handler.Handler) *Registry {
	if defaultSink == nil {
		defaultSink = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	}
	return &Registry{
		plugins:     make(map[string]*Plugin),
		defaultSink: defaultSink,
	}
}

// Register adds p under p.Name.
func (r *Registry) Register(p *Plugin) error {
	if p == nil || strings.TrimSpace(p.Name) == "" || p.Handler == nil {
		return ErrInvalidPlugin
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plugins[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlugin, p.Name)
	}
	r.plugins[p.Name] = p
	return nil
}

// Unregister removes and returns the named plugin. Its handler is not closed.
func (r *Registry) Unregister(name string) (*Plugin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plugins[name]
	if ok {
		delete(r.plugins, name)
	}
	return p, ok
}

// Lookup returns the plugin registered under name. Names are case-sensitive.
func (r *Registry) Lookup(name string) (*Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the registered plugin names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.plugins))
}

// DefaultSink returns the sink used by code that is not bound to a plugin
func (r *Registry) DefaultSink() handler.Handler {
	return r.defaultSink
}

// Stats collects the counters of every sink that keeps them, keyed by plugin
// name. The default sink is reported as "default".
func (r *Registry) Stats() map[string]*handler.Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*handler.Stats, len(r.plugins)+1)
	if sp, ok := r.defaultSink.(handler.StatsProvider); ok {
		out["default"] = sp.Stats()
	}
	for name, p := range r.plugins {
		if sp, ok := p.Handler.(handler.StatsProvider); ok {
			out[name] = sp.Stats()
		}
	}
	return out
}

// Close unregisters every plugin and closes all sinks, the default one last.
func (r *Registry) Close() error {
	r.mu.Lock()
	plugins := r.plugins
	r.plugins = make(map[string]*Plugin)
	r.mu.Unlock()

	var err error
	for _, name := range slices.Sorted(maps.Keys(plugins)) {
		if cerr := plugins[name].Handler.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", name, cerr))
		}
	}
	return multierr.Append(err, r.defaultSink.Close())
}

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

func init() {
	defaultRegistry = NewRegistry(nil)
}

// Default returns the process registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process registry. A nil r is ignored.
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}
