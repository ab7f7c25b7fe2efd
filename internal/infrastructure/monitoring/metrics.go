package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Widget metrics
	Renders     *prometheus.CounterVec
	Fallbacks   prometheus.Counter
	AppendSkips *prometheus.CounterVec

	// Store metrics
	StoreItems prometheus.Gauge

	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON API
type MetricsSnapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalRenders  int64   `json:"total_renders"`
	TotalDuration float64 `json:"total_duration_seconds"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keypoints_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "keypoints_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "keypoints_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		Renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keypoints_renders_total",
				Help: "Total number of rendered widgets",
			},
			[]string{"view", "entry"},
		),
		Fallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "keypoints_fallbacks_total",
				Help: "Manual placements that returned the no-points notice",
			},
		),
		AppendSkips: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keypoints_append_skips_total",
				Help: "Automatic appends that left content unchanged",
			},
			[]string{"reason"},
		),

		StoreItems: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "keypoints_store_items",
				Help: "Number of items held by the store",
			},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "keypoints_uptime_seconds",
			Help: "Service uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus exposition handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordRender records a rendered widget
func (m *Metrics) RecordRender(view, entry string) {
	m.Renders.WithLabelValues(view, entry).Inc()
	m.mu.Lock()
	m.snapshot.TotalRenders++
	m.mu.Unlock()
}

// RecordFallback records a manual placement without points
func (m *Metrics) RecordFallback() {
	m.Fallbacks.Inc()
}

// RecordAppendSkip records an automatic append that changed nothing
func (m *Metrics) RecordAppendSkip(reason string) {
	m.AppendSkips.WithLabelValues(reason).Inc()
}

// SetStoreItems sets the number of stored items
func (m *Metrics) SetStoreItems(count int) {
	m.StoreItems.Set(float64(count))
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.snapshot
	s.UptimeSeconds = time.Since(m.startTime).Seconds()
	return s
}
