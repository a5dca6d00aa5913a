/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package task

import (
	"regexp"
	"strings"
)

// rationaleMarkers are the discourse markers a rationale response must use
// at least one of.
var rationaleMarkers = []string{"because", "therefore", "so that", "given"}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Check reports whether response satisfies the task. Dispatch over the
// task type is closed: unknown types return false, never panic. Malformed
// specs (e.g. a span task without an expected span) also return false.
func Check(response string, spec Spec) bool {
	switch spec.Type {
	case TypeSpan:
		return checkSpan(response, spec)
	case TypeProcedure:
		return checkProcedure(response, spec)
	case TypeRationale:
		return checkRationale(response, spec)
	default:
		return false
	}
}

// normalize collapses whitespace, lowercases, and trims for span matching.
func normalize(s string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// checkSpan tests containment of the normalized expected span in the
// normalized response. An empty expected span is a miss, not a vacuous hit.
func checkSpan(response string, spec Spec) bool {
	want := normalize(spec.ExpectedSpan)
	if want == "" {
		return false
	}
	return strings.Contains(normalize(response), want)
}

// checkProcedure scans the response for every step's substring in strictly
// increasing position order. Steps with an empty requirement are skipped
// without moving the cursor. An empty step list passes vacuously.
func checkProcedure(response string, spec Spec) bool {
	lower := strings.ToLower(response)
	pos := 0
	for _, step := range spec.PolicySteps {
		must := strings.ToLower(step.Must)
		if must == "" {
			continue
		}
		i := strings.Index(lower[pos:], must)
		if i < 0 {
			return false
		}
		pos += i + len(must)
	}
	return true
}

// checkRationale requires a discourse marker and a minimum word count.
func checkRationale(response string, spec Spec) bool {
	lower := strings.ToLower(response)
	hasMarker := false
	for _, m := range rationaleMarkers {
		if strings.Contains(lower, m) {
			hasMarker = true
			break
		}
	}
	return hasMarker && len(strings.Fields(response)) >= spec.minWords()
}
