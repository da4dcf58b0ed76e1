// Package metrics holds the Prometheus collectors exported on /metrics/prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landing_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "landing_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "landing_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)

	// Mail metrics
	MailSendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_mail_send_total",
			Help: "SMTP delivery attempts by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_notifications_total",
			Help: "Form submissions by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)
