// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the translator.
//
// # Description
//
// Metrics cover the request surface and the per-token translation pipeline:
//   - Request counters (by endpoint, status)
//   - Token outcome counters (by rule that fired, or failure)
//   - Translation latency histograms
//   - Spelling-fallback override counter
//
// # Integration
//
// Metrics are exposed via the /metrics endpoint. Use with Prometheus +
// Grafana for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Metric Definitions
// =============================================================================

// Namespace for all metrics
const metricsNamespace = "signosi"

// Subsystem for translation metrics
const translationSubsystem = "translation"

// TranslationMetrics holds all Prometheus metrics for translation operations.
//
// Initialize once at startup via InitMetrics().
type TranslationMetrics struct {
	// RequestsTotal counts requests by endpoint and status.
	// Labels: endpoint (translate, spell, vocabulary), status (success, error)
	RequestsTotal *prometheus.CounterVec

	// TokenOutcomesTotal counts per-token resolution outcomes.
	// Labels: outcome (direct, number, spelling, override, failed)
	TokenOutcomesTotal *prometheus.CounterVec

	// TranslationDurationSeconds measures end-to-end translation latency.
	// Labels: endpoint
	TranslationDurationSeconds *prometheus.HistogramVec

	// FallbackOverridesTotal counts word signs overridden by letter spelling.
	FallbackOverridesTotal prometheus.Counter

	// SignedURLErrorsTotal counts media URL signing failures.
	SignedURLErrorsTotal prometheus.Counter
}

// DefaultMetrics is the singleton instance of TranslationMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *TranslationMetrics

// InitMetrics creates and registers all Prometheus metrics. Call once at
// application startup; calling twice panics on duplicate registration.
func InitMetrics() *TranslationMetrics {
	DefaultMetrics = &TranslationMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: translationSubsystem,
				Name:      "requests_total",
				Help:      "Total number of requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),

		TokenOutcomesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: translationSubsystem,
				Name:      "token_outcomes_total",
				Help:      "Per-token resolution outcomes by rule or failure",
			},
			[]string{"outcome"},
		),

		TranslationDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: translationSubsystem,
				Name:      "duration_seconds",
				Help:      "End-to-end translation latency in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"endpoint"},
		),

		FallbackOverridesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: translationSubsystem,
				Name:      "fallback_overrides_total",
				Help:      "Word signs overridden by the letter-spelling fallback",
			},
		),

		SignedURLErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: translationSubsystem,
				Name:      "signed_url_errors_total",
				Help:      "Media URL signing failures",
			},
		),
	}

	return DefaultMetrics
}

// =============================================================================
// Label Values
// =============================================================================

// Endpoint represents an API endpoint for metrics labeling.
type Endpoint string

const (
	EndpointTranslate  Endpoint = "translate"
	EndpointSpell      Endpoint = "spell"
	EndpointVocabulary Endpoint = "vocabulary"
)

// Outcome represents a per-token resolution outcome.
type Outcome string

const (
	OutcomeDirect   Outcome = "direct"
	OutcomeNumber   Outcome = "number"
	OutcomeSpelling Outcome = "spelling"
	OutcomeOverride Outcome = "override"
	OutcomeFailed   Outcome = "failed"
)

// =============================================================================
// Helper Methods
// =============================================================================

// RecordRequest records a completed request.
func (m *TranslationMetrics) RecordRequest(endpoint Endpoint, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(string(endpoint), status).Inc()
}

// RecordOutcome records one token's resolution outcome.
func (m *TranslationMetrics) RecordOutcome(outcome Outcome) {
	m.TokenOutcomesTotal.WithLabelValues(string(outcome)).Inc()
}

// RecordDuration records end-to-end latency for an endpoint.
func (m *TranslationMetrics) RecordDuration(endpoint Endpoint, seconds float64) {
	m.TranslationDurationSeconds.WithLabelValues(string(endpoint)).Observe(seconds)
}

// RecordOverride increments the fallback override counter.
func (m *TranslationMetrics) RecordOverride() {
	m.FallbackOverridesTotal.Inc()
}

// RecordSignedURLError increments the signing failure counter.
func (m *TranslationMetrics) RecordSignedURLError() {
	m.SignedURLErrorsTotal.Inc()
}
