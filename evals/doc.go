/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package evals provides observer plumbing for document evaluation runs.
//
// An Observer receives the outcome stream of an evaluation: failures,
// log lines, and grades. Observers compose: NamespacedObserver fans a
// single factory out into a tree keyed by evaluation axis (structure,
// editorial, task, judge), ResultCollector records failures and grades
// for later assertion, and MetricsObserver exports Prometheus metrics.
//
// The testevals subpackage adapts *testing.T to the Observer interface so
// evaluation logic can drive ordinary Go tests.
package evals
