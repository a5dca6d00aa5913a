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
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
)

// DefaultClaudeModel is the Claude model used when none is configured.
const DefaultClaudeModel = "claude-sonnet-4-20250514"

// claude implements Interface using the Anthropic API.
type claude struct {
	client   anthropic.Client
	settings settings
	metrics  *genAI
}

// NewClaude creates a Claude-backed judge. The client carries
// authentication; by default anthropic.NewClient reads ANTHROPIC_API_KEY
// from the environment.
func NewClaude(client anthropic.Client, opts ...Option) Interface {
	s := defaultSettings()
	s.model = DefaultClaudeModel
	for _, opt := range opts {
		opt(&s)
	}
	return &claude{
		client:   client,
		settings: s,
		metrics:  newGenAI(),
	}
}

// Judge implements Interface.
func (c *claude) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	promptText, err := buildPrompt(request)
	if err != nil {
		return nil, fmt.Errorf("failed to build judge prompt: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.settings.model),
		MaxTokens:   c.settings.maxTokens,
		Temperature: anthropic.Float(c.settings.temperature),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(promptText),
			},
		}},
	}

	message, err := retry.WithBackoff(ctx, c.settings.retryConfig, "claude_judge", isRetryableClaudeError, func() (*anthropic.Message, error) {
		return c.client.Messages.New(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("claude judge call failed: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		c.metrics.recordTokens(ctx, c.settings.model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var textContent string
	for _, content := range message.Content {
		if content.Type == "text" {
			textContent = content.Text
		}
	}
	if textContent == "" {
		return nil, errors.New("no text content in Claude's response")
	}

	judgement, err := parseJudgement(textContent)
	if err != nil {
		clog.FromContext(ctx).With("response", textContent).
			With("error", err).
			Error("Failed to parse Claude judgement")
		return nil, err
	}

	c.metrics.recordJudgement(ctx, c.settings.model)
	return judgement, nil
}

// isRetryableClaudeError checks if an error is a retryable Anthropic API
// error: rate limit, overloaded, and transient server errors.
func isRetryableClaudeError(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 503, 504, 529:
			return true
		}
	}
	return false
}
