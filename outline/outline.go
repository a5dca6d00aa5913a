/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package outline

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern matches an ATX heading: 1-6 marker characters, at least one
// whitespace character, and a non-empty remainder.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// trailingMarkers matches closing marker runs some authors append to headings
// (e.g. "## Usage ##"). These are decoration, not title content.
var trailingMarkers = regexp.MustCompile(`\s*#+\s*$`)

// Entry is a single heading: its depth (1-6) and its title text.
type Entry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Key returns the set key used for outline comparison, encoding the level
// alongside the title so that "## Usage" and "### Usage" are distinct.
func (e Entry) Key() string {
	return fmt.Sprintf("%d:%s", e.Level, e.Title)
}

// Outline is the ordered sequence of headings extracted from one document.
// Order is document order; set-based metrics ignore it.
type Outline []Entry

// Extract scans text line by line and returns every heading as an Entry.
// Lines with more than six markers, no whitespace after the markers, or an
// empty remainder are not headings and are skipped silently. Empty input
// yields an empty outline. A matched heading whose remainder is nothing but
// trailing markers keeps its place with an empty title, so it still counts
// toward set sizes and the depth histogram.
func Extract(text string) Outline {
	var headings Outline
	for _, line := range strings.Split(text, "\n") {
		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		headings = append(headings, Entry{
			Level: len(m[1]),
			Title: strings.TrimSpace(trailingMarkers.ReplaceAllString(m[2], "")),
		})
	}
	return headings
}
