// Package metrics provides Prometheus metrics collection for userhub.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/artpar/userhub/pkg/statuswriter"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for userhub.
type Collector struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Resource metrics
	UsersStored    prometheus.GaugeFunc
	EmailConflicts prometheus.Counter
}

// New creates a new metrics collector with the request metrics registered.
// Call ObserveUsers to attach the stored-users gauge to its count source.
func New() *Collector {
	return &Collector{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "userhub",
				Name:      "requests_total",
				Help:      "Total number of requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "userhub",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "userhub",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		EmailConflicts: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "userhub",
				Name:      "email_conflicts_total",
				Help:      "Total number of rejected duplicate-email writes",
			},
		),
	}
}

// ObserveUsers registers the stored-users gauge, sourced from count on every
// scrape. Call at most once per collector.
func (c *Collector) ObserveUsers(count func() int) {
	c.UsersStored = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "userhub",
			Name:      "users_stored",
			Help:      "Number of users currently stored",
		},
		func() float64 { return float64(count()) },
	)
}

// Handler returns the /metrics endpoint handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments request handling with count, duration, and
// in-flight metrics. The path label uses the matched route pattern when one
// is available, so id segments do not mint new label series.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		c.RequestsInFlight.Inc()
		defer c.RequestsInFlight.Dec()

		sw := statuswriter.Wrap(w)
		next.ServeHTTP(sw, r)

		status := strconv.Itoa(sw.Status)
		path := routePattern(r)
		c.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		c.RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		if sw.Status == http.StatusConflict {
			c.EmailConflicts.Inc()
		}
	})
}

// routePattern returns the chi route pattern matched by the request, falling
// back to the raw path outside a chi router or on an unmatched route.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
