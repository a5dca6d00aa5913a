/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package outline extracts heading outlines from Markdown documents and
// canonicalizes them for structural comparison.
//
// An outline is the ordered sequence of (level, title) pairs for every
// heading line in a document. Extraction is deliberately forgiving: lines
// that do not look like headings are skipped, never rejected, because the
// candidate documents under evaluation are model output and routinely
// contain malformed Markdown.
//
// Canonicalization normalizes titles so that set comparisons between a
// reference and a candidate outline are insensitive to case, punctuation
// and whitespace differences. It is idempotent: canonicalizing an already
// canonical entry is a no-op.
package outline
