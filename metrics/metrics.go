// Package metrics exports cacheaside counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/cacheaside"
)

// StatsSource is anything that can report a Stats snapshot. Every
// cacheaside.Manager satisfies it.
type StatsSource interface {
	Stats() cacheaside.Stats
}

// Collector reads a StatsSource on every scrape. The values are not copied into
// separate Prometheus counters, so they can never drift from Stats().
type Collector struct {
	src StatsSource

	hits     *prometheus.Desc
	misses   *prometheus.Desc
	errors   *prometheus.Desc
	inflight *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector describes src under namespace. name is attached as the "cache"
// label so several managers can share one registry.
func NewCollector(namespace, name string, src StatsSource) *Collector {
	if namespace == "" {
		namespace = "app"
	}
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cacheaside", metric), help, nil, labels)
	}
	return &Collector{
		src:      src,
		hits:     desc("hits_total", "Lookups served from the cache, including coalesced callers"),
		misses:   desc("misses_total", "Lookups that invoked the getter successfully"),
		errors:   desc("errors_total", "Lookups that returned a getter or backend error"),
		inflight: desc("inflight_groups", "Keys with a coalesced fetch currently outstanding"),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.errors
	ch <- c.inflight
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.errors, prometheus.CounterValue, float64(s.Errors))
	ch <- prometheus.MustNewConstMetric(c.inflight, prometheus.GaugeValue, float64(s.InFlight))
}

// Register creates a Collector for src and registers it with reg
// (prometheus.DefaultRegisterer when nil).
func Register(reg prometheus.Registerer, namespace, name string, src StatsSource) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := NewCollector(namespace, name, src)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
