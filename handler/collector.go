package handler

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/pluginlog/core"
)

// Collector exports handler Stats as Prometheus counters, labelled by sink name.
type Collector struct {
	stats     func() map[string]*Stats
	processed *prometheus.Desc
	failed    *prometheus.Desc
}

// NewCollector creates a collector whose stats function is called on every
// scrape, e.g. host.Registry.Stats. Register it with a prometheus.Registerer.
func NewCollector(namespace string, stats func() map[string]*Stats) *Collector {
	return &Collector{
		stats: stats,
		processed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sink", "records_processed_total"),
			"Number of log records emitted by a sink.",
			[]string{"sink", "level"}, nil,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sink", "records_failed_total"),
			"Number of log records a sink failed to emit.",
			[]string{"sink"}, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processed
	ch <- c.failed
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.stats == nil {
		return
	}
	stats := c.stats()
	for _, name := range slices.Sorted(maps.Keys(stats)) {
		s := stats[name]
		if s == nil {
			continue
		}
		for _, level := range []core.SinkLevel{core.SinkInfo, core.SinkWarning, core.SinkSevere} {
			ch <- prometheus.MustNewConstMetric(c.processed, prometheus.CounterValue,
				float64(s.GetProcessed(level)), name, level.String())
		}
		ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue,
			float64(s.GetFailed()), name)
	}
}
