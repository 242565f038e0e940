package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TwitchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twitch_requests_total",
			Help: "Total number of outbound requests to twitch",
		},
		// result: ok, transport_error, status_error, decode_error
		[]string{"endpoint", "result"},
	)

	TwitchRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "twitch_request_duration_seconds",
			Help:    "Outbound twitch request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	TokenSourceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twitch_token_source_total",
			Help: "Where app tokens were taken from",
		},
		[]string{"source"}, // cache, store, twitch
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
