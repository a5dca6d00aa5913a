/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"

	"chainguard.dev/docpair/suite"
)

// axisRow is one rendered line of the summary table.
type axisRow struct {
	axis  string
	avg   float64
	pairs int
}

// Summary renders a per-axis summary of batch results and applies a
// pass/fail threshold. Axes are reported independently and never combined.
// Returns the rendered table and whether any axis average fell below the
// threshold. Degraded judge scores (JudgeOK=false) count as zeros, so an
// unavailable judge drags its axis down rather than disappearing.
func Summary(results []suite.PairResult, threshold float64) (string, bool) {
	if len(results) == 0 {
		return "no results\n", false
	}

	var (
		structureSum float64
		rulesSum     float64
		judgeSum     float64
		judgeCount   int
		judgeFailed  int
		taskSum      float64
		taskCount    int
	)
	for _, r := range results {
		structureSum += r.Structure.Aggregate
		rulesSum += r.Editorial[suite.EditorialRules]
		if score, ok := r.Editorial[suite.EditorialJudge]; ok {
			judgeSum += score
			judgeCount++
			if !r.JudgeOK {
				judgeFailed++
			}
		}
		if len(r.Task) > 0 {
			taskSum += r.TaskReward()
			taskCount++
		}
	}

	n := len(results)
	rows := []axisRow{
		{axis: "structure", avg: structureSum / float64(n), pairs: n},
		{axis: "editorial/rules", avg: rulesSum / float64(n), pairs: n},
	}
	if judgeCount > 0 {
		rows = append(rows, axisRow{axis: "editorial/judge", avg: judgeSum / float64(judgeCount), pairs: judgeCount})
	}
	if taskCount > 0 {
		rows = append(rows, axisRow{axis: "task", avg: taskSum / float64(taskCount), pairs: taskCount})
	}

	var buf bytes.Buffer
	table := createStandardTable([]string{"Axis", "Average", "Pairs", "Status"}, &buf)

	belowThreshold := false
	for _, row := range rows {
		status := "PASS"
		if row.avg < threshold {
			status = "FAIL"
			belowThreshold = true
		}
		_ = table.Append([]string{
			row.axis,
			fmt.Sprintf("%.3f", row.avg),
			fmt.Sprintf("%d", row.pairs),
			status,
		})
	}
	_ = table.Render()

	if judgeFailed > 0 {
		fmt.Fprintf(&buf, "\n%d of %d judge calls degraded to zero\n", judgeFailed, judgeCount)
	}

	return buf.String(), belowThreshold
}
