/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON extracts JSON content from a model response that may wrap it
// in markdown code blocks. It looks for content between ```json and ```
// markers, or returns the input trimmed of any stray fences.
func extractJSON(responseText string) string {
	lines := strings.Split(responseText, "\n")
	var jsonBuffer bytes.Buffer
	inJSONBlock := false
	foundJSON := false

	for _, line := range lines {
		if !inJSONBlock && line == "```json" {
			inJSONBlock = true
			foundJSON = true
			continue
		}

		if inJSONBlock && line == "```" {
			break
		}

		if inJSONBlock {
			if jsonBuffer.Len() > 0 {
				jsonBuffer.WriteString("\n")
			}
			jsonBuffer.WriteString(line)
		}
	}

	if foundJSON {
		return strings.TrimSpace(jsonBuffer.String())
	}

	responseText = strings.TrimSpace(responseText)

	if strings.HasPrefix(responseText, "```json") && strings.HasSuffix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else {
		// These do nothing if the fences aren't there, so always do it.
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	return responseText
}

// parseJudgement extracts and validates a Judgement from model output.
// Scores outside [0, 1] are rejected rather than clamped: an out-of-range
// score means the model ignored the rubric and the reasoning is suspect too.
func parseJudgement(responseText string) (*Judgement, error) {
	var j Judgement
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &j); err != nil {
		return nil, fmt.Errorf("failed to parse judgement: %w", err)
	}
	if j.Score < 0.0 || j.Score > 1.0 {
		return nil, fmt.Errorf("judgement score %v out of range [0, 1]", j.Score)
	}
	return &j, nil
}
