/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package structure

import (
	"math"
	"testing"

	"chainguard.dev/docpair/outline"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

func TestCompareOutlineRecall(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		gold string
		cand string
		want float64
	}{{
		name: "identical single heading",
		gold: "# Install\n",
		cand: "# Install\n",
		want: 1.0,
	}, {
		name: "disjoint headings",
		gold: "# Install\n",
		cand: "# Removal\n",
		want: 0.0,
	}, {
		name: "half recalled",
		gold: "# Install\n# Usage\n",
		cand: "# Usage\n",
		want: 0.5,
	}, {
		name: "duplicates collapse in both outlines",
		gold: "# Install\n# Install\n# Usage\n",
		cand: "# Install\n# Install\n",
		want: 0.5,
	}, {
		name: "same title different level is a miss",
		gold: "# Usage\n",
		cand: "## Usage\n",
		want: 0.0,
	}, {
		name: "case and punctuation differences are forgiven",
		gold: "# Install!\n",
		cand: "#   INSTALL\n",
		want: 1.0,
	}, {
		name: "both empty",
		gold: "",
		cand: "",
		want: 0.0,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Compare(outline.Extract(tc.gold), outline.Extract(tc.cand), cfg)
			if math.Abs(b.OutlineRecall-tc.want) > epsilon {
				t.Errorf("OutlineRecall = %v, want %v", b.OutlineRecall, tc.want)
			}
		})
	}
}

func TestCompareCriticalRecall(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		gold string
		cand string
		want float64
	}{{
		name: "no critical gold headings is vacuously satisfied",
		gold: "# Overview\n## Design\n",
		cand: "",
		want: 1.0,
	}, {
		name: "critical heading recalled",
		gold: "# Installation\n# Overview\n",
		cand: "# Installation\n",
		want: 1.0,
	}, {
		name: "critical heading missed",
		gold: "# Troubleshooting\n",
		cand: "# Overview\n",
		want: 0.0,
	}, {
		name: "term match is substring of the canonical title",
		gold: "## Advanced Configuration Tips\n",
		cand: "## Advanced Configuration Tips\n",
		want: 1.0,
	}, {
		name: "half of critical sections recalled",
		gold: "# Install\n# FAQ\n# Overview\n",
		cand: "# FAQ\n# Overview\n",
		want: 0.5,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Compare(outline.Extract(tc.gold), outline.Extract(tc.cand), cfg)
			if math.Abs(b.CriticalRecall-tc.want) > epsilon {
				t.Errorf("CriticalRecall = %v, want %v", b.CriticalRecall, tc.want)
			}
		})
	}
}

func TestCompareDepthBalance(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		gold string
		cand string
		want float64
	}{{
		name: "identical level histograms",
		gold: "# A\n## B\n## C\n",
		cand: "# X\n## Y\n## Z\n",
		want: 1.0,
	}, {
		name: "maximally imbalanced",
		gold: "# A\n# B\n",
		cand: "###### X\n###### Y\n",
		want: 0.0,
	}, {
		name: "both empty outlines are identical",
		gold: "",
		cand: "",
		want: 1.0,
	}, {
		name: "half overlap",
		gold: "# A\n# B\n",
		cand: "# X\n## Y\n",
		want: 0.5,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Compare(outline.Extract(tc.gold), outline.Extract(tc.cand), cfg)
			if math.Abs(b.DepthBalance-tc.want) > epsilon {
				t.Errorf("DepthBalance = %v, want %v", b.DepthBalance, tc.want)
			}
		})
	}
}

func TestCompareAggregate(t *testing.T) {
	cfg := DefaultConfig()
	gold := outline.Extract("# Install\n## Usage\n")

	// A perfect candidate scores 1.0 on every axis, so the aggregate is the
	// sum of the default weights.
	b := Compare(gold, gold, cfg)
	want := Bundle{
		OutlineRecall:  1.0,
		CriticalRecall: 1.0,
		DepthBalance:   1.0,
		Aggregate:      1.0,
	}
	if diff := cmp.Diff(want, b, cmpopts.EquateApprox(0, epsilon)); diff != "" {
		t.Errorf("Compare() mismatch (-want +got):\n%s", diff)
	}

	// Custom weights shift the aggregate.
	cfg.Weights = Weights{Outline: 1.0, Critical: 0, Depth: 0}
	b = Compare(gold, outline.Extract("## Usage\n"), cfg)
	if math.Abs(b.Aggregate-0.5) > epsilon {
		t.Errorf("Aggregate = %v, want 0.5", b.Aggregate)
	}
}

func TestBundleMap(t *testing.T) {
	b := Bundle{OutlineRecall: 0.5, CriticalRecall: 1.0, DepthBalance: 0.25, Aggregate: 0.7}
	want := map[string]float64{
		"outline_recall":  0.5,
		"critical_recall": 1.0,
		"depth_balance":   0.25,
		"aggregate":       0.7,
	}
	if diff := cmp.Diff(want, b.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{{
		name:   "defaults are valid",
		mutate: func(*Config) {},
	}, {
		name:    "negative weight",
		mutate:  func(c *Config) { c.Weights.Outline = -0.1 },
		wantErr: true,
	}, {
		name:    "all-zero weights",
		mutate:  func(c *Config) { c.Weights = Weights{} },
		wantErr: true,
	}, {
		name:    "empty vocabulary",
		mutate:  func(c *Config) { c.CriticalTerms = nil },
		wantErr: true,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
