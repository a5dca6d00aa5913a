/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"chainguard.dev/docpair/retry"
)

// settings holds the knobs shared by all judge implementations.
type settings struct {
	model       string
	maxTokens   int64
	temperature float64
	retryConfig retry.Config
}

// defaultSettings returns the shared defaults; model defaults are per
// implementation. Temperature is low for scoring consistency.
func defaultSettings() settings {
	return settings{
		maxTokens:   2048,
		temperature: 0.1,
		retryConfig: retry.DefaultConfig(),
	}
}

// Option configures a judge implementation.
type Option func(*settings)

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithMaxTokens overrides the completion token cap.
func WithMaxTokens(n int64) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *settings) {
		if t >= 0 {
			s.temperature = t
		}
	}
}

// WithRetryConfig overrides the retry behavior for transient API errors.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *settings) {
		s.retryConfig = cfg
	}
}
