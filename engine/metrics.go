package engine

import "github.com/prometheus/client_golang/prometheus"

// Collector returns a prometheus.Collector exposing the engine's aggregate
// statistics as gauges, so a host process can register engine activity on
// its own registry without the engine depending on any particular
// registration point.
func (e *Engine) Collector() prometheus.Collector {
	return &engineCollector{engine: e}
}

type engineCollector struct {
	engine *Engine
}

var (
	verticesExpandedDesc = prometheus.NewDesc(
		"wayfarer_engine_vertices_expanded_total", "Total vertices expanded by Expand.", nil, nil)
	edgesGeneratedDesc = prometheus.NewDesc(
		"wayfarer_engine_edges_generated_total", "Total edges produced by Expand.", nil, nil)
	providersCalledDesc = prometheus.NewDesc(
		"wayfarer_engine_providers_called_total", "Total successful provider invocations.", nil, nil)
	cacheHitsDesc = prometheus.NewDesc(
		"wayfarer_engine_cache_hits_total", "Total EdgeCache hits.", nil, nil)
	cacheMissesDesc = prometheus.NewDesc(
		"wayfarer_engine_cache_misses_total", "Total EdgeCache misses.", nil, nil)
	cachePutsDesc = prometheus.NewDesc(
		"wayfarer_engine_cache_puts_total", "Total EdgeCache puts.", nil, nil)
	peakMemoryDesc = prometheus.NewDesc(
		"wayfarer_engine_peak_memory_bytes", "Peak per-search arena usage observed.", nil, nil)
)

func (c *engineCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- verticesExpandedDesc
	ch <- edgesGeneratedDesc
	ch <- providersCalledDesc
	ch <- cacheHitsDesc
	ch <- cacheMissesDesc
	ch <- cachePutsDesc
	ch <- peakMemoryDesc
}

func (c *engineCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.engine.Stats()
	ch <- prometheus.MustNewConstMetric(verticesExpandedDesc, prometheus.CounterValue, float64(s.VerticesExpanded))
	ch <- prometheus.MustNewConstMetric(edgesGeneratedDesc, prometheus.CounterValue, float64(s.EdgesGenerated))
	ch <- prometheus.MustNewConstMetric(providersCalledDesc, prometheus.CounterValue, float64(s.ProvidersCalled))
	ch <- prometheus.MustNewConstMetric(cacheHitsDesc, prometheus.CounterValue, float64(s.CacheHits))
	ch <- prometheus.MustNewConstMetric(cacheMissesDesc, prometheus.CounterValue, float64(s.CacheMisses))
	ch <- prometheus.MustNewConstMetric(cachePutsDesc, prometheus.CounterValue, float64(s.CachePuts))
	ch <- prometheus.MustNewConstMetric(peakMemoryDesc, prometheus.GaugeValue, float64(s.PeakMemoryBytes))
}
