/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/docpair/retry"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
)

// DefaultOpenAIModel is the OpenAI model used when none is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// openAI implements Interface using the OpenAI chat completions API.
type openAI struct {
	client   openai.Client
	settings settings
	metrics  *genAI
}

// NewOpenAI creates an OpenAI-backed judge. The client carries
// authentication; by default openai.NewClient reads OPENAI_API_KEY from
// the environment.
func NewOpenAI(client openai.Client, opts ...Option) Interface {
	s := defaultSettings()
	s.model = DefaultOpenAIModel
	for _, opt := range opts {
		opt(&s)
	}
	return &openAI{
		client:   client,
		settings: s,
		metrics:  newGenAI(),
	}
}

// Judge implements Interface.
func (o *openAI) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	promptText, err := buildPrompt(request)
	if err != nil {
		return nil, fmt.Errorf("failed to build judge prompt: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.settings.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(promptText),
		},
		Temperature:         openai.Float(o.settings.temperature),
		MaxCompletionTokens: openai.Int(o.settings.maxTokens),
	}

	completion, err := retry.WithBackoff(ctx, o.settings.retryConfig, "openai_judge", isRetryableOpenAIError, func() (*openai.ChatCompletion, error) {
		return o.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("openai judge call failed: %w", err)
	}

	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		o.metrics.recordTokens(ctx, o.settings.model, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no choices in OpenAI response")
	}
	textContent := completion.Choices[0].Message.Content
	if textContent == "" {
		return nil, errors.New("no text content in OpenAI response")
	}

	judgement, err := parseJudgement(textContent)
	if err != nil {
		clog.FromContext(ctx).With("response", textContent).
			With("error", err).
			Error("Failed to parse OpenAI judgement")
		return nil, err
	}

	o.metrics.recordJudgement(ctx, o.settings.model)
	return judgement, nil
}

// isRetryableOpenAIError checks if an error is a retryable OpenAI API
// error: rate limit and transient server errors.
func isRetryableOpenAIError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}
