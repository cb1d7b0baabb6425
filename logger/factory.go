package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/pluginlog/binder"
	"github.com/philipp01105/pluginlog/core"
)

// RootLoggerName is accepted by GetLogger for the root logger, in any case
const RootLoggerName = "ROOT"

// Factory creates and caches Loggers that share one Binder.
type Factory struct {
	binder        *binder.Binder
	loggers       sync.Map // name -> *Logger
	includeCaller bool
	now           func() time.Time
	onError       func(error)
}

// Option configures a Factory
type Option func(*Factory)

// WithCaller controls call-site attribution (default: on)
func WithCaller(enabled bool) Option {
	return func(f *Factory) { f.includeCaller = enabled }
}

// WithCoarseClock timestamps records from a clock updated every 500µs
// instead of calling time.Now on every record.
func WithCoarseClock(enabled bool) Option {
	return func(f *Factory) {
		if enabled {
			core.StartCoarseClock()
			f.now = core.CoarseNow
		} else {
			f.now = wallClock
		}
	}
}

// WithErrorHandler sets the function receiving errors from the level
// methods, which have no error result. The default writes to stderr.
func WithErrorHandler(fn func(error)) Option {
	return func(f *Factory) {
		if fn != nil {
			f.onError = fn
		}
	}
}

// NewFactory creates a factory whose loggers route through b.
func NewFactory(b *binder.Binder, opts ...Option) *Factory {
	f := &Factory{
		binder:        b,
		includeCaller: true,
		now:           wallClock,
		onError:       stderrErrorHandler,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetLogger returns the logger for name, creating it on first use.
// Every call with the same name returns the same instance.
func (f *Factory) GetLogger(name string) *Logger {
	if strings.EqualFold(name, RootLoggerName) {
		name = ""
	}
	if l, ok := f.loggers.Load(name); ok {
		return l.(*Logger)
	}
	l, _ := f.loggers.LoadOrStore(name, &Logger{name: name, f: f})
	return l.(*Logger)
}

// GetLoggerFor returns the logger named after the type of v, see NameOf.
func (f *Factory) GetLoggerFor(v any) *Logger {
	return f.GetLogger(NameOf(v))
}

// Root returns the root logger
func (f *Factory) Root() *Logger {
	return f.GetLogger("")
}

// Binder returns the binder shared by the factory's loggers
func (f *Factory) Binder() *binder.Binder {
	return f.binder
}

func (f *Factory) report(err error) {
	f.onError(err)
}

func stderrErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "pluginlog: %v\n", err)
}
