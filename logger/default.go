package logger

import (
	"sync"

	"github.com/philipp01105/pluginlog/binder"
	"github.com/philipp01105/pluginlog/manifest"
)

var (
	defaultFactory *Factory
	defaultMu      sync.RWMutex
)

func init() {
	// plugin.yml from the working directory, routed through host.Default()
	defaultFactory = NewFactory(binder.New(manifest.Default(), nil))
}

// Default returns the default factory
func Default() *Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFactory
}

// SetDefault sets the default factory
func SetDefault(f *Factory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// Get returns the named logger from the default factory
func Get(name string) *Logger {
	return Default().GetLogger(name)
}

// GetFor returns the logger named after the type of v from the default factory
func GetFor(v any) *Logger {
	return Default().GetLoggerFor(v)
}

// Initialize (re)binds the default factory, see binder.Binder.Initialize.
func Initialize(reinitialize bool) error {
	return Default().Binder().Initialize(reinitialize)
}
