package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Directory (TVMaze) call metrics
var (
	TVMazeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_requests_total",
			Help: "Total number of requests sent to the TVMaze API.",
		},
		[]string{"endpoint", "status"},
	)

	TVMazeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_request_duration_seconds",
			Help:    "Duration of requests sent to the TVMaze API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Response cache metrics, labelled by cache group
var (
	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_lookups_total",
			Help: "Total number of response cache lookups, by result (hit or miss).",
		},
		[]string{"cache", "result"},
	)

	CacheEvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_evictions_total",
			Help: "Total number of responses evicted from the cache to stay within its size.",
		},
		[]string{"cache"},
	)
)

// Web front-end metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by route and status code.",
		},
		[]string{"route", "code"},
	)

	// StaleRendersDiscardedTotal counts fetch results dropped because a newer
	// action on the same display area started after them.
	StaleRendersDiscardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stale_renders_discarded_total",
			Help: "Total number of fetch results discarded because a newer action superseded them.",
		},
		[]string{"area"},
	)
)

func init() {
	prometheus.MustRegister(
		TVMazeRequestsTotal,
		TVMazeRequestDuration,
		CacheLookupsTotal,
		CacheEvictionsTotal,
		HTTPRequestsTotal,
		StaleRendersDiscardedTotal,
	)
}
