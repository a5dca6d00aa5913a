/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"chainguard.dev/docpair/task"
	"github.com/chainguard-dev/clog"
)

// DocRole distinguishes the two documents in a pair.
type DocRole string

const (
	// RoleGold is the reference document.
	RoleGold DocRole = "gold"
	// RoleCandidate is the document under evaluation.
	RoleCandidate DocRole = "candidate"
)

// Document is one side of an evaluation pair. Documents are value types
// and never mutated after construction.
type Document struct {
	Role DocRole `json:"role"`
	Text string  `json:"text"`
}

// Row is one dataset record: a document pair and the tasks posed against
// the candidate.
type Row struct {
	ID           string      `json:"id"`
	GoldDoc      string      `json:"gold_doc"`
	CandidateDoc string      `json:"candidate_doc"`
	Tasks        []task.Spec `json:"tasks,omitempty"`
}

// Gold returns the gold document.
func (r Row) Gold() Document {
	return Document{Role: RoleGold, Text: r.GoldDoc}
}

// Candidate returns the candidate document.
func (r Row) Candidate() Document {
	return Document{Role: RoleCandidate, Text: r.CandidateDoc}
}

// LoadDataset reads a JSONL dataset file, one Row per line. Blank lines
// are skipped. Optional fields may be absent; a procedure task with no
// policy steps passes vacuously at check time, so the loader flags it as
// a likely dataset mistake without rejecting the row.
func LoadDataset(ctx context.Context, path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	log := clog.FromContext(ctx)
	var rows []Row

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("failed to parse dataset line %d: %w", lineNo, err)
		}

		for _, spec := range row.Tasks {
			if spec.Type == task.TypeProcedure && len(spec.PolicySteps) == 0 {
				log.With("id", row.ID).With("line", lineNo).
					Warn("Procedure task has no policy steps and will pass vacuously")
			}
		}

		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return rows, nil
}
