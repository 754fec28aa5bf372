// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/centralbjl/directory/pkg/models"
)

// Collector registers and records the service metrics.
type Collector struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      prometheus.Histogram
	listingsCreated   *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
}

// NewCollector creates a Collector backed by its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "centralbjl_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "status_code"}),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "centralbjl_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		listingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "centralbjl_listings_created_total",
			Help: "Listings submitted for moderation, by kind",
		}, []string{"kind"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "centralbjl_status_transitions_total",
			Help: "Applied moderation transitions, by kind and resulting status",
		}, []string{"kind", "status"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.listingsCreated,
		c.statusTransitions,
	)

	return c
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.Observe(duration.Seconds())
}

// RecordListingCreated records a new submission.
func (c *Collector) RecordListingCreated(kind models.ListingKind) {
	c.listingsCreated.WithLabelValues(string(kind)).Inc()
}

// RecordStatusTransition records an applied moderation transition. Implements
// moderation.Recorder.
func (c *Collector) RecordStatusTransition(kind models.ListingKind, status models.Status) {
	c.statusTransitions.WithLabelValues(string(kind), string(status)).Inc()
}

// Handler returns the /metrics endpoint handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
