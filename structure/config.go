/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package structure

import "errors"

// Weights controls how the three submetrics combine into the aggregate.
type Weights struct {
	// Outline weights outline recall (default: 0.6).
	Outline float64
	// Critical weights critical-section recall (default: 0.3).
	Critical float64
	// Depth weights depth balance (default: 0.1).
	Depth float64
}

// Config configures structural comparison.
type Config struct {
	// Weights for the aggregate score.
	Weights Weights
	// CriticalTerms is the vocabulary identifying high-value headings.
	// A heading is critical if its canonical title contains any term.
	CriticalTerms []string
}

// DefaultCriticalTerms returns the default high-value heading vocabulary.
func DefaultCriticalTerms() []string {
	return []string{
		"install",
		"installation",
		"quickstart",
		"usage",
		"config",
		"configuration",
		"cli",
		"environment",
		"troubleshooting",
		"faq",
		"reference",
	}
}

// DefaultConfig returns a Config with the default weights and vocabulary.
func DefaultConfig() Config {
	return Config{
		Weights:       Weights{Outline: 0.6, Critical: 0.3, Depth: 0.1},
		CriticalTerms: DefaultCriticalTerms(),
	}
}

// Validate checks that the configuration has valid values.
func (c Config) Validate() error {
	if c.Weights.Outline < 0 || c.Weights.Critical < 0 || c.Weights.Depth < 0 {
		return errors.New("weights cannot be negative")
	}
	if c.Weights.Outline+c.Weights.Critical+c.Weights.Depth == 0 {
		return errors.New("at least one weight must be positive")
	}
	if len(c.CriticalTerms) == 0 {
		return errors.New("critical term vocabulary cannot be empty")
	}
	return nil
}
