/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docpair_evaluations_total",
			Help: "Total number of document evaluations performed",
		},
		[]string{"axis", "namespace"},
	)

	failureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docpair_evaluation_failures_total",
			Help: "Total number of failed document evaluations",
		},
		[]string{"axis", "namespace"},
	)

	gradeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "docpair_evaluation_grade",
			Help: "Most recent evaluation grade (0.0-1.0)",
		},
		[]string{"axis", "namespace"},
	)
)

// MetricsObserver implements the Observer interface with Prometheus
// metrics. The axis label identifies which reward axis is being observed
// (structure, editorial, task, judge).
type MetricsObserver struct {
	axis      string
	namespace string

	evalCounter prometheus.Counter
	failCounter prometheus.Counter
	gradeGauge  prometheus.Gauge
}

// NewMetricsObserver creates a metrics observer for the given axis and
// namespace.
func NewMetricsObserver(axis, namespace string) *MetricsObserver {
	labels := prometheus.Labels{
		"axis":      axis,
		"namespace": namespace,
	}
	return &MetricsObserver{
		axis:        axis,
		namespace:   namespace,
		evalCounter: evaluationCounter.With(labels),
		failCounter: failureCounter.With(labels),
		gradeGauge:  gradeGauge.With(labels),
	}
}

// Increment implements Observer.Increment.
func (m *MetricsObserver) Increment() {
	m.evalCounter.Inc()
}

// Fail implements Observer.Fail.
func (m *MetricsObserver) Fail(msg string) {
	m.failCounter.Inc()
}

// Grade implements Observer.Grade.
func (m *MetricsObserver) Grade(score float64, reasoning string) {
	m.gradeGauge.Set(score)
}

// Log implements Observer.Log (no-op for metrics observer).
func (m *MetricsObserver) Log(msg string) {
}

// Total implements Observer.Total.
func (m *MetricsObserver) Total() int64 {
	return 0
}
