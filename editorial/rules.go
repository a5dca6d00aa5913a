/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package editorial

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Rule is a single weighted predicate over lowercased document text.
type Rule struct {
	// Name identifies the rule in breakdowns and reports.
	Name string
	// Weight is the rule's contribution to the score when it matches.
	Weight float64
	// Pattern is matched against the lowercased document text.
	Pattern *regexp.Regexp
}

// DefaultRules returns the documentation editorial rule set:
//
//   - prerequisites (0.5): the document names its requirements.
//   - pinned_versions (0.3): an install command pins an explicit version,
//     or the document references an environment-definition file.
//   - error_playbook (0.2): the document has a troubleshooting/FAQ section.
func DefaultRules() []Rule {
	return []Rule{{
		Name:    "prerequisites",
		Weight:  0.5,
		Pattern: regexp.MustCompile(`\b(requirements|prerequisites|deps|dependencies)\b`),
	}, {
		Name:    "pinned_versions",
		Weight:  0.3,
		Pattern: regexp.MustCompile(`(pip install [^\n]+==\d|conda env create|pyproject\.toml)`),
	}, {
		Name:    "error_playbook",
		Weight:  0.2,
		Pattern: regexp.MustCompile(`(troubleshooting|common errors|faq)`),
	}}
}

// Checker evaluates document text against a rule set.
type Checker struct {
	rules []Rule
}

// NewChecker creates a Checker with the given rules. Passing no rules is a
// configuration error, not an empty score.
func NewChecker(rules []Rule) (*Checker, error) {
	if len(rules) == 0 {
		return nil, errors.New("at least one rule is required")
	}
	for i, r := range rules {
		if r.Pattern == nil {
			return nil, fmt.Errorf("rule %d (%q) has no pattern", i, r.Name)
		}
		if r.Weight < 0 {
			return nil, fmt.Errorf("rule %d (%q) has negative weight %v", i, r.Name, r.Weight)
		}
	}
	return &Checker{rules: rules}, nil
}

// NewDefaultChecker creates a Checker with DefaultRules.
func NewDefaultChecker() *Checker {
	c, err := NewChecker(DefaultRules())
	if err != nil {
		// DefaultRules is a fixed valid set.
		panic(err)
	}
	return c
}

// Score returns the sum of weights of matching rules. With the default
// rules the result is one of {0, 0.2, 0.3, 0.5, 0.7, 0.8, 1.0}.
func (c *Checker) Score(text string) float64 {
	var score float64
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		if r.Pattern.MatchString(lower) {
			score += r.Weight
		}
	}
	return score
}

// Breakdown returns each rule's match result by name, for auditing.
func (c *Checker) Breakdown(text string) map[string]bool {
	hits := make(map[string]bool, len(c.rules))
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		hits[r.Name] = r.Pattern.MatchString(lower)
	}
	return hits
}
