// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package metrics declares the Prometheus collectors exported at /metrics.
//
// All collectors are registered on the default registry through promauto.
// Callers use the Record* helpers rather than touching collectors directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeBlocked  = "blocked"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Recommendation Engine Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation latency including the snapshot fetch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates",
			Help:    "Number of eligible courses scored per request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	// Snapshot Query Metrics
	SnapshotQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snapshot_query_duration_seconds",
			Help:    "Duration of DuckDB queries that build a recommendation snapshot",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	SnapshotQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_query_errors_total",
			Help: "Total number of failed snapshot queries",
		},
		[]string{"query"},
	)

	// Review Metrics
	ReviewsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Total number of course reviews persisted",
		},
	)

	ReviewEventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_events_processed_total",
			Help: "Review-submitted events handled by the audit consumer",
		},
		[]string{"result"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one engine call. candidates is ignored
// for outcomes other than OutcomeOK.
func RecordRecommendation(outcome string, candidates int, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	if outcome == OutcomeOK {
		RecommendCandidates.Observe(float64(candidates))
	}
}

// RecordSnapshotQuery records a snapshot query and counts it as failed when err is non-nil.
func RecordSnapshotQuery(query string, duration time.Duration, err error) {
	SnapshotQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		SnapshotQueryErrors.WithLabelValues(query).Inc()
	}
}

// RecordReviewSubmitted counts a persisted review.
func RecordReviewSubmitted() {
	ReviewsSubmitted.Inc()
}

// RecordReviewEvent counts a consumed review event with result "ok" or "invalid".
func RecordReviewEvent(result string) {
	ReviewEventsProcessed.WithLabelValues(result).Inc()
}
