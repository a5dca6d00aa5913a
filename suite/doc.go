/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package suite evaluates candidate documents against gold documents
// across three independent axes:
//
//   - structure: outline similarity metrics (recall, critical coverage,
//     depth balance)
//   - editorial: deterministic rule checks, plus an LLM judge's
//     actionability score when a judge is configured
//   - task: hint-and-retry conversations whose binary rewards measure
//     whether the candidate document actually supports its tasks
//
// Axes are reported independently and never combined into a single
// number; combining them is a policy decision that belongs to callers.
//
// Evaluation is per-row independent, so batches run on a bounded worker
// pool. Within a row, task conversations are strictly sequential; only
// the judge call blocks on the network, and a judge failure degrades to
// a recorded zero rather than failing the batch.
package suite
