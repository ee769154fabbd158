// Package metrics exposes Prometheus counters for the analysis engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ucroadways_cache_lookups_total",
		Help: "Result cache lookups by result kind and outcome",
	}, []string{"kind", "outcome"})
	InvalidationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ucroadways_cache_invalidations_total",
		Help: "Total result cache invalidations",
	})
	ComputeDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ucroadways_compute_duration_ms",
		Help:    "Time spent computing a derived result in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(CacheLookupsTotal)
	prometheus.MustRegister(InvalidationsTotal)
	prometheus.MustRegister(ComputeDurationMs)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler { return promhttp.Handler() }

// Recorder forwards engine cache events to the package counters.
type Recorder struct{}

func (Recorder) CacheHit(kind string) {
	CacheLookupsTotal.WithLabelValues(kind, "hit").Inc()
}

func (Recorder) CacheMiss(kind string) {
	CacheLookupsTotal.WithLabelValues(kind, "miss").Inc()
}

func (Recorder) Invalidated() {
	InvalidationsTotal.Inc()
}

func (Recorder) Computed(kind string, d time.Duration) {
	ComputeDurationMs.WithLabelValues(kind).Observe(float64(d.Microseconds()) / 1000)
}
