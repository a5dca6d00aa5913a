/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"chainguard.dev/docpair/prompt"
)

// DefaultCriterion is the editorial criterion used when a request leaves
// it empty. It rates how actionable a document is for a reader trying to
// follow it.
const DefaultCriterion = "ACTIONABILITY - " +
	"(1) explicit preconditions; (2) step ordering; " +
	"(3) copy/paste-ready commands with language tags; (4) failure modes"

// documentPrompt is the prompt for single-document judgement.
var documentPrompt = prompt.MustNewPrompt(`<task>
You are evaluating a documentation page to determine how well it meets the
evaluation criterion. Assess the document's quality based on the specific
criterion provided.
</task>

{{document}}

{{criterion}}

<instructions>
1. Evaluate the document SOLELY based on the given criterion - ignore all other qualities
2. Assess how well the document meets the specific criterion requirements
3. Provide a score from 0.0 to 1.0 using this scoring rubric:

SCORING RUBRIC:
- Score 1.0 (Perfect): Document perfectly meets the criterion.
  * Use When: Document fully satisfies all criterion requirements with no meaningful gaps
  * Suggestion Guidance: MUST be empty array (no improvements needed)

- Score 0.75-0.99 (High Quality): Document meets criterion well with minor variations.
  * Use When: Document addresses criterion effectively but has small gaps or minor presentation issues
  * Suggestion Guidance: MUST provide specific minor improvements that justify the deduction

- Score 0.50-0.74 (Adequate): Document partially meets criterion with notable gaps.
  * Use When: Document addresses basic criterion requirements but is missing important elements
  * Suggestion Guidance: MUST provide specific improvements addressing notable gaps

- Score 0.25-0.49 (Poor): Document has significant problems meeting the criterion.
  * Use When: Document shows some awareness of the criterion but fails in major ways
  * Suggestion Guidance: MUST provide multiple specific improvements addressing major problems

- Score 0.0-0.24 (Failing): Document fails to meet the criterion or contradicts it.
  * Use When: Document completely ignores criterion requirements
  * Suggestion Guidance: MUST provide comprehensive improvements addressing fundamental failures

4. Explain your reasoning and provide suggestions following the guidelines above
</instructions>

<output_format>
Return your judgment as a JSON object with this structure:
{
  "score": 0.0 to 1.0,
  "reasoning": "explanation of how well the document meets the criterion",
  "suggestions": ["improvement1", "improvement2", ...]
}

Focus suggestions on how to better meet the criterion requirements.
Do not quote long passages of the document.
</output_format>

Respond with only the JSON object, no additional text.`)

// Bind implements prompt binding for Request. Document and criterion are
// fenced in XML so the model can tell them apart from instructions.
func (r *Request) Bind(p *prompt.Prompt) (*prompt.Prompt, error) {
	p, err := p.BindXML("document", struct {
		XMLName struct{} `xml:"document"`
		Content string   `xml:",chardata"`
	}{
		Content: r.Document,
	})
	if err != nil {
		return nil, err
	}

	return p.BindXML("criterion", struct {
		XMLName struct{} `xml:"criterion"`
		Content string   `xml:",chardata"`
	}{
		Content: r.Criterion,
	})
}

// buildPrompt binds the request and renders the final prompt text.
func buildPrompt(r *Request) (string, error) {
	bound, err := r.Bind(documentPrompt)
	if err != nil {
		return "", err
	}
	return bound.Build()
}
