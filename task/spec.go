/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package task

// Type discriminates the supported task kinds. The set is closed: checker
// dispatch matches each type explicitly and fails closed on anything else.
type Type string

const (
	// TypeSpan asks for an exact phrase from the document.
	TypeSpan Type = "span"
	// TypeProcedure asks for ordered steps matching a policy.
	TypeProcedure Type = "procedure"
	// TypeRationale asks for a justified argument of a minimum length.
	TypeRationale Type = "rationale"
)

// DefaultMinWords is the rationale word-count floor when a spec omits it.
const DefaultMinWords = 40

// Step is one required element of a procedure task.
type Step struct {
	// Must is the substring that has to appear, in order, in the response.
	Must string `json:"must"`
}

// Spec describes one task posed against a candidate document. Specs arrive
// from external dataset rows; optional fields may be absent and default at
// check time, never erroring.
type Spec struct {
	// Type selects the checker.
	Type Type `json:"type"`
	// Question is the natural-language task statement shown to the model.
	Question string `json:"question,omitempty"`
	// ExpectedSpan is the phrase a span task must quote.
	ExpectedSpan string `json:"expected_span,omitempty"`
	// PolicySteps are the ordered requirements of a procedure task.
	PolicySteps []Step `json:"policy_steps,omitempty"`
	// MinWords is the rationale word-count floor (default DefaultMinWords).
	MinWords int `json:"min_words,omitempty"`
}

// minWords returns the effective rationale floor.
func (s Spec) minWords() int {
	if s.MinWords <= 0 {
		return DefaultMinWords
	}
	return s.MinWords
}
