/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chainguard.dev/docpair/task"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, `
{"id": "pair-1", "gold_doc": "# A", "candidate_doc": "# B"}

{"id": "pair-2", "gold_doc": "# C", "candidate_doc": "# D", "tasks": [{"type": "span", "question": "q", "expected_span": "s"}]}
`)

	rows, err := LoadDataset(context.Background(), path)
	require.NoError(t, err)

	want := []Row{{
		ID:           "pair-1",
		GoldDoc:      "# A",
		CandidateDoc: "# B",
	}, {
		ID:           "pair-2",
		GoldDoc:      "# C",
		CandidateDoc: "# D",
		Tasks: []task.Spec{{
			Type:         task.TypeSpan,
			Question:     "q",
			ExpectedSpan: "s",
		}},
	}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("LoadDataset() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDatasetMalformedLine(t *testing.T) {
	path := writeDataset(t, `{"id": "ok", "gold_doc": "# A", "candidate_doc": "# B"}
{not json}
`)
	_, err := LoadDataset(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(context.Background(), filepath.Join(t.TempDir(), "absent.jsonl"))
	require.Error(t, err)
}

func TestLoadDatasetEmptyProcedureSteps(t *testing.T) {
	// A procedure task without steps is tolerated (it passes vacuously at
	// check time); the loader only warns.
	path := writeDataset(t, `{"id": "pair-1", "gold_doc": "# A", "candidate_doc": "# B", "tasks": [{"type": "procedure", "question": "q"}]}
`)
	rows, err := LoadDataset(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Tasks, 1)
}

func TestRowDocumentAccessors(t *testing.T) {
	row := Row{GoldDoc: "gold text", CandidateDoc: "candidate text"}

	if got := row.Gold(); got.Role != RoleGold || got.Text != "gold text" {
		t.Errorf("Gold() = %+v", got)
	}
	if got := row.Candidate(); got.Role != RoleCandidate || got.Text != "candidate text" {
		t.Errorf("Candidate() = %+v", got)
	}
}
