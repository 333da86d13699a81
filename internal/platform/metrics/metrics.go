// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus series for the directory API.

Each [Collector] owns a private registry, so tests can build as many as they
like without duplicate-registration panics. A nil *Collector is valid and
records nothing, which is how METRICS_ENABLED=false is implemented.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded by [Collector.ContactSubmitted].
const (
	OutcomeCreated     = "created"
	OutcomeRejected    = "rejected"
	OutcomeRateLimited = "rate_limited"
)

// Collector holds every series the API exports.
type Collector struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	contactMessages *prometheus.CounterVec
	artisanSearches *prometheus.CounterVec
}

// NewCollector builds a collector whose series are prefixed with namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	contactMessages := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact inquiries by outcome",
		},
		[]string{"outcome"},
	)

	artisanSearches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artisan_listings_total",
			Help:      "Artisan listings by whether any filter was applied",
		},
		[]string{"filtered"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		contactMessages,
		artisanSearches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Collector{
		registry:        registry,
		httpRequests:    httpRequests,
		httpDuration:    httpDuration,
		contactMessages: contactMessages,
		artisanSearches: artisanSearches,
	}
}

// ObserveRequest records one finished HTTP request.
// route is the chi route pattern, never the raw path.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ContactSubmitted counts a contact inquiry by outcome.
func (c *Collector) ContactSubmitted(outcome string) {
	if c == nil {
		return
	}
	c.contactMessages.WithLabelValues(outcome).Inc()
}

// ArtisansListed counts an artisan listing.
func (c *Collector) ArtisansListed(filtered bool) {
	if c == nil {
		return
	}
	c.artisanSearches.WithLabelValues(strconv.FormatBool(filtered)).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
