// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every metric the service emits.
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	DocumentChars    prometheus.Histogram
	CacheHitsTotal   prometheus.Counter
}

// New registers the metric set on a registry (pass nil for the default
// registry).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "policyscope_analyses_total",
			Help: "Analyses attempted, by extraction mode and outcome.",
		}, []string{"mode", "outcome"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "policyscope_analysis_duration_seconds",
			Help:    "End-to-end analysis duration including scraping.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		DocumentChars: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "policyscope_document_chars",
			Help:    "Size of the combined scraped policy document.",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "policyscope_cache_hits_total",
			Help: "Analyses answered from the report cache.",
		}),
	}
}
