package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillgap_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Dataset
	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skillgap_dataset_records",
			Help: "Number of records in the live dataset",
		},
		[]string{"kind"},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_dataset_reloads_total",
			Help: "Dataset reloads by trigger",
		},
		[]string{"trigger"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillgap_uploads_total",
			Help: "Data file uploads by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RecommenderReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillgap_recommender_ready",
			Help: "1 when a recommender is built from the live dataset",
		},
	)

	// Recommendation
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillgap_recommend_duration_seconds",
			Help:    "Time spent computing recommendations",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillgap_cache_hits_total",
			Help: "Recommendation cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillgap_cache_misses_total",
			Help: "Recommendation cache misses",
		},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillgap_ws_connections",
			Help: "Connected WebSocket clients",
		},
	)
)

// SetDataset records the size of the live dataset.
func SetDataset(users, jobs int, ready bool) {
	DatasetRecords.WithLabelValues("users").Set(float64(users))
	DatasetRecords.WithLabelValues("jobs").Set(float64(jobs))
	if ready {
		RecommenderReady.Set(1)
	} else {
		RecommenderReady.Set(0)
	}
}
