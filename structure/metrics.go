/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package structure

import (
	"math"
	"strings"

	"chainguard.dev/docpair/outline"
)

// maxLevel is the deepest heading level tracked by the depth histogram.
const maxLevel = 6

// Bundle holds the named structural metrics for one gold/candidate pair.
// Each value is in [0, 1]. A Bundle is produced fresh per comparison and
// never mutated afterwards.
type Bundle struct {
	// OutlineRecall is the fraction of distinct gold headings reproduced
	// by the candidate.
	OutlineRecall float64 `json:"outline_recall"`
	// CriticalRecall is outline recall restricted to critical headings,
	// or 1.0 when the gold outline has none.
	CriticalRecall float64 `json:"critical_recall"`
	// DepthBalance measures similarity of heading-level distributions.
	DepthBalance float64 `json:"depth_balance"`
	// Aggregate is the weighted sum of the three submetrics.
	Aggregate float64 `json:"aggregate"`
}

// Map returns the bundle as named floats, matching the metric names
// reported by the suite.
func (b Bundle) Map() map[string]float64 {
	return map[string]float64{
		"outline_recall":  b.OutlineRecall,
		"critical_recall": b.CriticalRecall,
		"depth_balance":   b.DepthBalance,
		"aggregate":       b.Aggregate,
	}
}

// Compare computes the structural metrics between a gold and a candidate
// outline. Both outlines are canonicalized before comparison, so callers
// may pass raw extraction output. Duplicate canonical entries collapse to a
// single set member.
func Compare(gold, cand outline.Outline, cfg Config) Bundle {
	g := outline.CanonicalizeAll(gold)
	c := outline.CanonicalizeAll(cand)

	goldSet := entrySet(g)
	candSet := entrySet(c)

	b := Bundle{
		OutlineRecall:  recall(goldSet, candSet),
		CriticalRecall: criticalRecall(g, c, cfg.CriticalTerms),
		DepthBalance:   depthBalance(g, c),
	}
	b.Aggregate = clamp01(cfg.Weights.Outline*b.OutlineRecall +
		cfg.Weights.Critical*b.CriticalRecall +
		cfg.Weights.Depth*b.DepthBalance)
	return b
}

// entrySet collapses an outline to its distinct set keys.
func entrySet(o outline.Outline) map[string]struct{} {
	set := make(map[string]struct{}, len(o))
	for _, e := range o {
		set[e.Key()] = struct{}{}
	}
	return set
}

// recall returns |gold ∩ cand| / max(1, |gold|).
func recall(gold, cand map[string]struct{}) float64 {
	var hits int
	for k := range gold {
		if _, ok := cand[k]; ok {
			hits++
		}
	}
	return float64(hits) / float64(max(1, len(gold)))
}

// criticalRecall computes recall over the subset of headings whose canonical
// title contains at least one critical term. An empty gold subset satisfies
// the metric vacuously.
func criticalRecall(gold, cand outline.Outline, terms []string) float64 {
	goldCrit := entrySet(filterCritical(gold, terms))
	if len(goldCrit) == 0 {
		return 1.0
	}
	candCrit := entrySet(filterCritical(cand, terms))
	return recall(goldCrit, candCrit)
}

// filterCritical keeps entries whose title mentions any of the terms.
func filterCritical(o outline.Outline, terms []string) outline.Outline {
	var crit outline.Outline
	for _, e := range o {
		for _, term := range terms {
			if strings.Contains(e.Title, term) {
				crit = append(crit, e)
				break
			}
		}
	}
	return crit
}

// depthBalance converts the total variation distance between the two
// heading-level histograms into a similarity score: 1.0 for identical
// distributions, 0.0 for fully disjoint ones.
func depthBalance(gold, cand outline.Outline) float64 {
	g := levelHistogram(gold)
	c := levelHistogram(cand)

	var dist float64
	for i := 0; i < maxLevel; i++ {
		dist += math.Abs(g[i] - c[i])
	}
	return math.Max(0, 1-dist/2)
}

// levelHistogram returns the fractional occurrence of each heading level
// 1..6. An empty outline yields an all-zero histogram; the denominator is
// guarded so division never fails.
func levelHistogram(o outline.Outline) [maxLevel]float64 {
	var counts [maxLevel]int
	total := 0
	for _, e := range o {
		if e.Level < 1 || e.Level > maxLevel {
			continue
		}
		counts[e.Level-1]++
		total++
	}

	var hist [maxLevel]float64
	if total == 0 {
		return hist
	}
	for i, n := range counts {
		hist[i] = float64(n) / float64(total)
	}
	return hist
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
