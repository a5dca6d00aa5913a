/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package testevals provides a testing.T adapter for the evals framework.
//
// The adapter lets evaluation logic report failures and log messages
// through Go's standard testing framework:
//
//	obs := evals.NewNamespacedObserver(func(name string) evals.Observer {
//	    return testevals.NewPrefix(t, name)
//	})
//	suite.Evaluate(ctx, row, obs.Child("structure"))
//
// The adapter is thread-safe because it delegates to *testing.T, which is
// designed to be called from multiple goroutines.
package testevals
