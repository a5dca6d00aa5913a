/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package outline

import (
	"regexp"
	"strings"
)

var (
	// disallowed is everything outside the canonical title alphabet.
	disallowed = regexp.MustCompile(`[^a-z0-9:/\- ]+`)
	// whitespaceRuns collapses to a single space.
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Canonicalize normalizes an entry's title for comparison: lowercase, strip
// characters outside [a-z0-9:/- ], collapse whitespace runs, trim the ends.
// The level is never altered. Canonicalize is idempotent.
func Canonicalize(e Entry) Entry {
	title := strings.ToLower(e.Title)
	title = disallowed.ReplaceAllString(title, "")
	title = whitespaceRuns.ReplaceAllString(title, " ")
	return Entry{
		Level: e.Level,
		Title: strings.TrimSpace(title),
	}
}

// CanonicalizeAll returns a new outline with every entry canonicalized.
// The input is not modified.
func CanonicalizeAll(o Outline) Outline {
	if o == nil {
		return nil
	}
	out := make(Outline, len(o))
	for i, e := range o {
		out[i] = Canonicalize(e)
	}
	return out
}
