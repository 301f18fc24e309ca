package prometheus

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const requestsMetric = "calcsvc_http_requests_total"

// Collector holds the service metrics on a registry owned by the caller
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	calculations *prometheus.CounterVec
}

// NewCollector creates a new Prometheus metrics collector registered on reg.
// A nil reg gets a fresh registry.
func NewCollector(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: requestsMetric,
				Help: "Total number of HTTP requests received",
			},
			[]string{"method", "endpoint"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calcsvc_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route", "status"},
		),
		calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcsvc_calculations_total",
				Help: "Total number of calculations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// IncRequests increments the request count for method and path
func (c *Collector) IncRequests(method, path string) {
	c.httpRequests.WithLabelValues(method, path).Inc()
}

// ObserveRequestDuration records how long a request took
func (c *Collector) ObserveRequestDuration(method, route string, status int, duration time.Duration) {
	c.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// RecordCalculation records a calculation outcome
func (c *Collector) RecordCalculation(operation, outcome string) {
	c.calculations.WithLabelValues(operation, outcome).Inc()
}

// RequestCount returns the current request count for method and path.
// Pairs that were never incremented report zero without creating a series.
func (c *Collector) RequestCount(method, path string) (uint64, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return 0, fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != requestsMetric {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m, method, path) {
				return uint64(m.GetCounter().GetValue()), nil
			}
		}
	}

	return 0, nil
}

func labelsMatch(m *dto.Metric, method, path string) bool {
	var gotMethod, gotPath bool
	for _, lp := range m.GetLabel() {
		switch lp.GetName() {
		case "method":
			gotMethod = lp.GetValue() == method
		case "endpoint":
			gotPath = lp.GetValue() == path
		}
	}
	return gotMethod && gotPath
}

// Export renders every registered metric in the text exposition format
func (c *Collector) Export() (string, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}

	return buf.String(), nil
}

// Handler serves the registry for scrapers
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		Registry: c.registry,
	})
}
