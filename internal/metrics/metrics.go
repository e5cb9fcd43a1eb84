// Package metrics exposes engine counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's collectors.
type Metrics struct {
	StepsCompleted   prometheus.Counter
	HistoryUnderruns prometheus.Counter
	BatchesAccepted  *prometheus.CounterVec
	RequestFailures  *prometheus.CounterVec
	RequestLatency   *prometheus.HistogramVec
	QueueDepth       prometheus.Gauge

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a private registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		StepsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_completed_total",
			Help:      "Number of finished quarter-turn sweeps",
		}),
		HistoryUnderruns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_underruns_total",
			Help:      "Sweeps that finished with no confirmed snapshot left",
		}),
		BatchesAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_accepted_total",
			Help:      "Batches accepted from the solving service",
		}, []string{"kind"}),
		RequestFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_failures_total",
			Help:      "Failed requests to the solving service",
		}, []string{"op"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_latency_seconds",
			Help:      "Solving service round trip time",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"op"}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "animation_queue_depth",
			Help:      "Quarter-turn sweeps waiting to animate",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.StepsCompleted,
		m.HistoryUnderruns,
		m.BatchesAccepted,
		m.RequestFailures,
		m.RequestLatency,
		m.QueueDepth,
	)

	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics. It blocks until the server
// stops.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(addr, mux)
}
