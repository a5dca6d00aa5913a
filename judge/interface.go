/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Request contains the context for one judgement.
type Request struct {
	// Document is the candidate document text to evaluate.
	Document string `json:"document"`

	// Criterion specifies the evaluation criterion. Empty selects
	// DefaultCriterion.
	Criterion string `json:"criterion,omitempty"`
}

// Validate checks the request and defaults the criterion.
func (r *Request) Validate() error {
	if r == nil {
		return errors.New("request is nil")
	}
	if r.Document == "" {
		return errors.New("document is required")
	}
	if r.Criterion == "" {
		r.Criterion = DefaultCriterion
	}
	return nil
}

// Judgement contains the judgement result.
type Judgement struct {
	// Score is the primary metric from 0.0 (awful) to 1.0 (ideal).
	Score float64 `json:"score"`

	// Reasoning explains the judgement and score.
	Reasoning string `json:"reasoning"`

	// Suggestions provides improvement recommendations. May be empty for
	// perfect scores.
	Suggestions []string `json:"suggestions"`
}

// String returns a formatted representation of the judgement.
func (j *Judgement) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Grade: %.2f", j.Score))
	if j.Reasoning != "" {
		sb.WriteString(fmt.Sprintf(" - %s", j.Reasoning))
	}
	sb.WriteString("\n")
	for _, suggestion := range j.Suggestions {
		sb.WriteString(fmt.Sprintf("  Suggestion: %s\n", suggestion))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Interface defines the contract for judge implementations.
type Interface interface {
	// Judge evaluates the document in the request against its criterion.
	Judge(ctx context.Context, request *Request) (*Judgement, error)
}
