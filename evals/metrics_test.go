/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsObserver(t *testing.T) {
	observer := NewMetricsObserver("structure", "/test/namespace")

	if observer.Total() != 0 {
		t.Errorf("Expected initial count to be 0, got %d", observer.Total())
	}

	observer.Increment()
	observer.Grade(0.85, "good result")
	observer.Fail("test failure")
	observer.Log("test log message") // no-op

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	var evalTotal, failTotal, gradeValue float64
	var foundEval, foundFail, foundGrade bool

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			hasNamespace := false
			hasAxis := false

			for _, label := range metric.GetLabel() {
				if label.GetName() == "namespace" && label.GetValue() == "/test/namespace" {
					hasNamespace = true
				}
				if label.GetName() == "axis" && label.GetValue() == "structure" {
					hasAxis = true
				}
			}

			if hasNamespace && hasAxis {
				switch family.GetName() {
				case "docpair_evaluations_total":
					evalTotal = metric.GetCounter().GetValue()
					foundEval = true
				case "docpair_evaluation_failures_total":
					failTotal = metric.GetCounter().GetValue()
					foundFail = true
				case "docpair_evaluation_grade":
					gradeValue = metric.GetGauge().GetValue()
					foundGrade = true
				}
			}
		}
	}

	if !foundEval || evalTotal != 1 {
		t.Errorf("evaluations counter = %v (found %v), want 1", evalTotal, foundEval)
	}
	if !foundFail || failTotal != 1 {
		t.Errorf("failures counter = %v (found %v), want 1", failTotal, foundFail)
	}
	if !foundGrade || gradeValue != 0.85 {
		t.Errorf("grade gauge = %v (found %v), want 0.85", gradeValue, foundGrade)
	}
}

func TestMetricsObserverSharedLabelsAccumulate(t *testing.T) {
	a := NewMetricsObserver("task", "/shared")
	b := NewMetricsObserver("task", "/shared")

	// Both observers write the same series.
	a.Increment()
	b.Increment()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	for _, family := range families {
		if family.GetName() != "docpair_evaluations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			match := 0
			for _, label := range metric.GetLabel() {
				if label.GetName() == "axis" && label.GetValue() == "task" {
					match++
				}
				if label.GetName() == "namespace" && label.GetValue() == "/shared" {
					match++
				}
			}
			if match == 2 {
				if got := metric.GetCounter().GetValue(); got != 2 {
					t.Errorf("shared counter = %v, want 2", got)
				}
				return
			}
		}
	}
	t.Error("shared series not found")
}
