/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/chainguard-dev/clog"
)

// LogObserver implements Observer by emitting structured log lines.
type LogObserver struct {
	log   *clog.Logger
	count int64
}

// NewLogObserver creates an observer that logs through the logger in ctx,
// tagged with the given namespace.
func NewLogObserver(ctx context.Context, namespace string) *LogObserver {
	return &LogObserver{
		log: clog.FromContext(ctx).With("namespace", namespace),
	}
}

// Fail implements Observer.Fail.
func (o *LogObserver) Fail(msg string) {
	o.log.Error(msg)
}

// Log implements Observer.Log.
func (o *LogObserver) Log(msg string) {
	o.log.Info(msg)
}

// Grade implements Observer.Grade.
func (o *LogObserver) Grade(score float64, reasoning string) {
	o.log.Info(fmt.Sprintf("Grade: %.2f - %s", score, reasoning))
}

// Increment implements Observer.Increment.
func (o *LogObserver) Increment() {
	atomic.AddInt64(&o.count, 1)
}

// Total implements Observer.Total.
func (o *LogObserver) Total() int64 {
	return atomic.LoadInt64(&o.count)
}
