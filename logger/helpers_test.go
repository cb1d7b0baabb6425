package logger_test

import (
	"sync"

	"github.com/philipp01105/pluginlog/binder"
	"github.com/philipp01105/pluginlog/config"
	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/host"
	"github.com/philipp01105/pluginlog/logger"
	"github.com/philipp01105/pluginlog/manifest"
)

const owner = "Tracker"

// capture records copies of everything it is asked to emit
type capture struct {
	mu        sync.Mutex
	threshold core.SinkLevel
	records   []core.Record
	err       error
}

func (c *capture) Handle(r *core.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, *r)
	return c.err
}

func (c *capture) Enabled(level core.SinkLevel) bool {
	return level >= c.threshold
}

func (c *capture) Close() error { return nil }

func (c *capture) all() []core.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Record(nil), c.records...)
}

func (c *capture) messages() []string {
	var out []string
	for _, r := range c.all() {
		out = append(out, r.Message)
	}
	return out
}

// newBound returns a factory whose owner is registered with props, the
// owner's sink and the host default sink.
func newBound(props config.Properties, opts ...logger.Option) (*logger.Factory, *capture, *capture) {
	def := &capture{}
	own := &capture{}
	reg := host.NewRegistry(def)
	if err := reg.Register(&host.Plugin{Name: owner, Handler: own, Properties: props}); err != nil {
		panic(err)
	}
	return logger.NewFactory(binder.New(manifest.Static(owner), reg), opts...), own, def
}
