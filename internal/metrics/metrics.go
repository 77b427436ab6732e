// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package metrics provides Prometheus instrumentation for the API
// surface and the menu/recommendation core.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sofra_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sofra_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	// Menu Browsing Metrics
	MenuQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sofra_menu_queries_total",
			Help: "Total number of menu list queries",
		},
		[]string{"sort"},
	)

	MenuEmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sofra_menu_empty_results_total",
			Help: "Menu queries whose filters eliminated every item",
		},
	)

	// View Tracking Metrics
	ViewsTracked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sofra_views_tracked_total",
			Help: "Total number of item view events received for tracking",
		},
	)

	// ViewTrackFailures keeps the fail-open tracking path observable:
	// each swallowed persistence error counts here and nowhere else.
	ViewTrackFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sofra_views_track_failures_total",
			Help: "View events whose persistence failed and was swallowed",
		},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sofra_recommendations_served_total",
			Help: "Total number of recommendation responses served",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sofra_recommendation_duration_seconds",
			Help:    "Recommendation scoring duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordMenuQuery records one menu list query and its result size.
func RecordMenuQuery(sort string, resultCount int) {
	MenuQueriesTotal.WithLabelValues(sort).Inc()
	if resultCount == 0 {
		MenuEmptyResults.Inc()
	}
}

// RecordRecommendation records one served recommendation response.
func RecordRecommendation(duration time.Duration) {
	RecommendationsServed.Inc()
	RecommendationDuration.Observe(duration.Seconds())
}
