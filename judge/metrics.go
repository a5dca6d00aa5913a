/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// meterName is shared across judge implementations, with the model name
// serving as a dimension on the recorded metrics.
const meterName = "chainguard.ai.docpair"

// genAI provides OpenTelemetry metrics for judge calls: token usage and
// judgement counts, with graceful degradation if metric creation fails.
type genAI struct {
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	judgements       metric.Int64Counter
}

// newGenAI creates the judge metrics instance. If any counter fails to
// initialize it logs a warning and substitutes a no-op counter instead of
// failing the judge entirely.
func newGenAI() *genAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	judgements, err := meter.Int64Counter("genai.judgements",
		metric.WithDescription("The number of judgements issued"),
		metric.WithUnit("{judgements}"))
	if err != nil {
		slog.Warn("Failed to create judgement counter, metrics will be disabled", "error", err, "meter", meterName)
		judgements = noop.Int64Counter{}
	}

	return &genAI{
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		judgements:       judgements,
	}
}

// recordTokens records prompt and completion token usage for one call.
func (m *genAI) recordTokens(ctx context.Context, model string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}

// recordJudgement counts one issued judgement.
func (m *genAI) recordJudgement(ctx context.Context, model string) {
	m.judgements.Add(ctx, 1, metric.WithAttributes(attribute.String("model", model)))
}
