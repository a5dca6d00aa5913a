/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
)

// SystemPrompt frames the model's role for task verification. Callers that
// drive a real model should send it as the system message.
const SystemPrompt = "You are evaluating documentation quality by performing tasks using ONLY the provided CANDIDATE doc.\n" +
	"Answer succinctly and show commands exactly when requested.\n" +
	"If information is missing, state what is missing explicitly."

// DefaultMaxTurns bounds the number of assistant turns per conversation.
const DefaultMaxTurns = 3

// Fixed engine replies. One is emitted per processed turn, never more.
const (
	confirmMessage = "✅ Correct. Stop."
	failureMessage = "❌ Not correct. Stop."
	genericHint    = "Answer more precisely."
)

// hints maps task types to their single corrective hint.
var hints = map[Type]string{
	TypeSpan:      "Answer with the exact phrase from the document (no paraphrase).",
	TypeProcedure: "List steps in order, using shell blocks with exact commands.",
	TypeRationale: "Provide a concise argument referencing specific doc sections.",
}

// ErrTerminated is returned by Observe once the conversation is over.
var ErrTerminated = errors.New("conversation already terminated")

// Role tags a transcript message. Only user and assistant appear.
type Role string

const (
	// RoleUser tags prompts and engine replies.
	RoleUser Role = "user"
	// RoleAssistant tags model responses.
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is the conversation's progress as an immutable value. A fresh State
// is returned from each Observe call, so every transition can be inspected
// and replayed in isolation. At most one of Success/Failed ever becomes
// true, and once set it never changes.
type State struct {
	// Turns counts processed assistant turns. Monotonically non-decreasing.
	Turns int `json:"turn_count"`
	// Hinted records whether the single corrective hint has been spent.
	Hinted bool `json:"hinted"`
	// Success marks the terminal success outcome.
	Success bool `json:"success"`
	// Failed marks the terminal failure outcome.
	Failed bool `json:"failed"`
}

// Terminal reports whether a terminal outcome has been reached.
func (s State) Terminal() bool {
	return s.Success || s.Failed
}

// Conversation drives the hint-and-retry protocol for one task against one
// candidate document. It owns its State exclusively until termination.
// Not safe for concurrent use: turns depend on the full prior history.
type Conversation struct {
	spec       Spec
	maxTurns   int
	state      State
	transcript []Message
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithMaxTurns overrides the assistant-turn safety bound.
func WithMaxTurns(n int) Option {
	return func(c *Conversation) {
		if n > 0 {
			c.maxTurns = n
		}
	}
}

// New starts a conversation for the given task and candidate document. The
// opening prompt carries the full document text and the task question
// verbatim. Unknown task types are allowed (the checker fails closed) but
// logged, since they usually indicate a dataset configuration problem.
func New(ctx context.Context, spec Spec, candidateDoc string, opts ...Option) *Conversation {
	switch spec.Type {
	case TypeSpan, TypeProcedure, TypeRationale:
	default:
		clog.FromContext(ctx).With("type", string(spec.Type)).
			Warn("Unknown task type, checker will fail closed")
	}

	c := &Conversation{
		spec:     spec,
		maxTurns: DefaultMaxTurns,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.transcript = append(c.transcript, Message{
		Role: RoleUser,
		Content: fmt.Sprintf("CANDIDATE DOCUMENT:\n%s\n\nTASK:\n%s",
			candidateDoc, spec.Question),
	})
	return c
}

// Observe processes one assistant turn: it appends the response to the
// transcript, checks it against the task, and appends exactly one engine
// reply. The returned State is the post-transition value. Observing a
// terminated or turn-capped conversation returns ErrTerminated.
func (c *Conversation) Observe(ctx context.Context, response string) (Message, State, error) {
	if c.Done() {
		return Message{}, c.state, ErrTerminated
	}

	c.transcript = append(c.transcript, Message{Role: RoleAssistant, Content: response})

	next := c.state
	next.Turns++

	var reply Message
	switch {
	case Check(response, c.spec):
		next.Success = true
		reply = Message{Role: RoleUser, Content: confirmMessage}
	case !c.state.Hinted:
		next.Hinted = true
		reply = Message{Role: RoleUser, Content: "Hint: " + hintFor(c.spec.Type)}
	default:
		next.Failed = true
		reply = Message{Role: RoleUser, Content: failureMessage}
	}

	c.transcript = append(c.transcript, reply)
	c.state = next

	clog.FromContext(ctx).With("turn", next.Turns).
		With("success", next.Success).
		With("failed", next.Failed).
		Debug("Processed conversation turn")

	return reply, next, nil
}

// Done reports whether the conversation is over: a terminal outcome was
// reached, or the turn bound forced termination.
func (c *Conversation) Done() bool {
	return c.state.Terminal() || c.state.Turns >= c.maxTurns
}

// State returns the current state value.
func (c *Conversation) State() State {
	return c.state
}

// Transcript returns a copy of the message history.
func (c *Conversation) Transcript() []Message {
	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Reward is the task axis outcome: 1.0 iff the conversation terminated in
// success. Meaningful once Done reports true.
func (c *Conversation) Reward() float64 {
	if c.state.Success {
		return 1.0
	}
	return 0.0
}

// hintFor returns the task-type-specific hint, or the generic fallback.
func hintFor(t Type) string {
	if h, ok := hints[t]; ok {
		return h
	}
	return genericHint
}
