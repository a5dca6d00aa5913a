/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package structure scores how well a candidate document's heading outline
// reproduces the structure of a reference (gold) document.
//
// Three submetrics are computed over canonical outlines:
//
//   - outline recall: the fraction of distinct gold headings present in the
//     candidate.
//   - critical recall: the same recall restricted to headings whose title
//     mentions a high-value term (install, usage, troubleshooting, ...).
//     Vacuously 1.0 when the gold document has no critical headings.
//   - depth balance: similarity of the two documents' heading-level
//     distributions, 1.0 for identical histograms.
//
// The aggregate is a weighted sum of the three, weights configurable via
// Config. All scores are in [0, 1] and every division is guarded, so the
// metrics are total functions of their inputs.
package structure
