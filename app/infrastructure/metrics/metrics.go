package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the process registry and the collectors shared by the cache
// accessor and the admission queue.
type Metrics struct {
	registry *prometheus.Registry

	CacheHits        *prometheus.CounterVec
	CacheMisses      *prometheus.CounterVec
	CacheWriteErrors *prometheus.CounterVec

	QueueDepth   prometheus.Gauge
	QueueRunning prometheus.Gauge
	JobDuration  *prometheus.HistogramVec
	JobFailures  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statsapi_cache_hits_total",
			Help: "Cache-aside hits per namespace.",
		}, []string{"namespace"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statsapi_cache_misses_total",
			Help: "Cache-aside misses per namespace.",
		}, []string{"namespace"}),
		CacheWriteErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statsapi_cache_write_errors_total",
			Help: "Swallowed cache write failures per namespace.",
		}, []string{"namespace"}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statsapi_admission_queue_depth",
			Help: "Jobs waiting in the admission queue.",
		}),
		QueueRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statsapi_admission_queue_running",
			Help: "1 while a job occupies the single execution slot.",
		}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "statsapi_admission_job_duration_seconds",
			Help:    "Admission queue handler duration.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"job"}),
		JobFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statsapi_admission_job_failures_total",
			Help: "Admission queue handler failures per job name.",
		}, []string{"job"}),
	}

	m.registry.MustRegister(
		m.CacheHits,
		m.CacheMisses,
		m.CacheWriteErrors,
		m.QueueDepth,
		m.QueueRunning,
		m.JobDuration,
		m.JobFailures,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
