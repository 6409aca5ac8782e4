package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records service metrics in its own registry
type Collector struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	dependencyUp    *prometheus.GaugeVec
	dependencyCheck *prometheus.HistogramVec
	buildInfo       *prometheus.GaugeVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_service_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_service_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		dependencyUp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ai_service_dependency_up",
				Help: "Whether the last probe of a dependency succeeded (1) or failed (0)",
			},
			[]string{"dependency"},
		),
		dependencyCheck: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_service_dependency_check_duration_seconds",
				Help:    "Dependency probe duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"dependency"},
		),
		buildInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ai_service_build_info",
				Help: "Build information about the running service",
			},
			[]string{"service", "version"},
		),
	}
}

// ObserveHTTPRequest records a handled HTTP request
func (c *Collector) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDependencyCheck records the outcome of a dependency probe
func (c *Collector) RecordDependencyCheck(dependency string, up bool, duration time.Duration) {
	value := 0.0
	if up {
		value = 1
	}
	c.dependencyUp.WithLabelValues(dependency).Set(value)
	c.dependencyCheck.WithLabelValues(dependency).Observe(duration.Seconds())
}

// SetBuildInfo publishes the service name and version
func (c *Collector) SetBuildInfo(service, version string) {
	c.buildInfo.WithLabelValues(service, version).Set(1)
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler exposing the collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
