/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge provides LLM-based scoring of candidate documents against
// editorial criteria.
//
// A judge receives a single document and a criterion (the default rates
// actionability) and returns a Judgement with a score from 0.0 to 1.0,
// reasoning, and improvement suggestions. Two implementations are
// provided: Claude via the Anthropic API and OpenAI chat models. Both are
// stateless and safe for concurrent use; transient API errors are retried
// with exponential backoff.
//
// Judges complement the deterministic structural and editorial checks:
// a regex can confirm that a troubleshooting section exists, but only a
// model can tell whether its steps are actually followable.
package judge
