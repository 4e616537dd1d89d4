// Package metrics exposes Prometheus metrics for the portfolio service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service collectors and the registry they live in.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	pageViews       *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	menuRenders     *prometheus.CounterVec
	contactDiscards prometheus.Counter
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithHistogramBuckets sets latency buckets in seconds.
func WithHistogramBuckets(b []float64) Option {
	return func(m *Manager) {
		if len(b) > 0 {
			m.buckets = b
		}
	}
}

// WithGoCollectors adds the Go runtime and process collectors.
func WithGoCollectors() Option {
	return func(m *Manager) {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// NewManager builds a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "portfolio",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.pageViews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "page_views_total",
		Help:      "Tracked page views by path.",
	}, []string{"path"})
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})
	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   m.buckets,
	}, []string{"route", "method"})
	m.menuRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "nav",
		Name:      "menu_renders_total",
		Help:      "Pages rendered for a scriptless menu toggle, by menu state.",
	}, []string{"menu"})
	m.contactDiscards = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "contact",
		Name:      "discarded_total",
		Help:      "Contact form submissions received and discarded.",
	})

	m.registry.MustRegister(m.pageViews, m.httpRequests, m.httpDuration, m.menuRenders, m.contactDiscards)
	return m
}

// Registry returns the registry backing m.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordPageView counts a tracked visit to path.
func (m *Manager) RecordPageView(path string) {
	m.pageViews.WithLabelValues(path).Inc()
}

// RecordHTTPRequest counts a finished request and observes its latency.
func (m *Manager) RecordHTTPRequest(route, method, status string, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordMenuRender counts a page rendered with an explicit menu state.
func (m *Manager) RecordMenuRender(menuOpen bool) {
	label := "closed"
	if menuOpen {
		label = "open"
	}
	m.menuRenders.WithLabelValues(label).Inc()
}

// RecordContactDiscard counts a discarded contact submission.
func (m *Manager) RecordContactDiscard() {
	m.contactDiscards.Inc()
}
