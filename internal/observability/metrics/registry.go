// Package metrics provides centralized Prometheus metrics for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

// Domain metrics
var (
	AssetUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_asset_uploads_total",
			Help: "Successful asset uploads by kind",
		},
		[]string{"kind"},
	)

	AssetBytesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_asset_bytes_stored_total",
			Help: "Total bytes accepted for storage by kind",
		},
		[]string{"kind"},
	)

	ScoresSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_scores_submitted_total",
			Help: "Player scores successfully submitted",
		},
	)
)
