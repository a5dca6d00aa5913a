/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"context"
	"fmt"
	"time"

	"chainguard.dev/docpair/editorial"
	"chainguard.dev/docpair/evals"
	"chainguard.dev/docpair/judge"
	"chainguard.dev/docpair/outline"
	"chainguard.dev/docpair/structure"
	"chainguard.dev/docpair/task"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// DefaultJudgeTimeout bounds one judge call, including its retries.
const DefaultJudgeTimeout = 30 * time.Second

// DefaultWorkers is the batch worker pool size when none is configured.
const DefaultWorkers = 4

// Editorial score keys in PairResult.Editorial.
const (
	// EditorialRules is the deterministic rule-check score, always present.
	EditorialRules = "rules"
	// EditorialJudge is the judge's actionability score, present only when
	// a judge is configured.
	EditorialJudge = "judge"
)

// Responder produces the next assistant turn for a task conversation,
// given the transcript so far. Implementations typically call a model with
// task.SystemPrompt; tests script the turns.
type Responder func(ctx context.Context, transcript []task.Message) (string, error)

// PairResult holds one row's scores, one field group per axis.
type PairResult struct {
	// ID echoes the row's identifier.
	ID string `json:"id"`

	// Structure is the structural similarity bundle.
	Structure structure.Bundle `json:"structure"`

	// Editorial maps score keys (EditorialRules, EditorialJudge) to values
	// in [0, 1].
	Editorial map[string]float64 `json:"editorial"`

	// JudgeOK is false when a configured judge failed and its score was
	// degraded to zero. True when the judge succeeded or none is configured.
	JudgeOK bool `json:"judge_ok"`

	// Task holds one binary reward per task, in row order.
	Task []float64 `json:"task,omitempty"`

	// TaskErr records a responder failure. Conversations after the failure
	// are not attempted and score zero.
	TaskErr error `json:"-"`
}

// TaskReward is the mean of the per-task binary rewards, or zero when the
// row has no tasks.
func (p PairResult) TaskReward() float64 {
	if len(p.Task) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range p.Task {
		sum += r
	}
	return sum / float64(len(p.Task))
}

// Suite evaluates document pairs. Construct with New; the zero value is
// not usable. A Suite is safe for concurrent use.
type Suite struct {
	structureConfig structure.Config
	editorial       *editorial.Checker
	judge           judge.Interface
	judgeTimeout    time.Duration
	responder       Responder
	workers         int
	observer        *evals.NamespacedObserver[evals.Observer]
	maxTurns        int
}

// Option configures a Suite.
type Option func(*Suite)

// WithStructureConfig overrides the structural metric configuration.
func WithStructureConfig(cfg structure.Config) Option {
	return func(s *Suite) { s.structureConfig = cfg }
}

// WithEditorialChecker overrides the editorial rule set.
func WithEditorialChecker(c *editorial.Checker) Option {
	return func(s *Suite) {
		if c != nil {
			s.editorial = c
		}
	}
}

// WithJudge enables the judge portion of the editorial axis.
func WithJudge(j judge.Interface) Option {
	return func(s *Suite) { s.judge = j }
}

// WithJudgeTimeout bounds one judge call, including retries.
func WithJudgeTimeout(d time.Duration) Option {
	return func(s *Suite) {
		if d > 0 {
			s.judgeTimeout = d
		}
	}
}

// WithResponder supplies the assistant for task conversations.
func WithResponder(r Responder) Option {
	return func(s *Suite) { s.responder = r }
}

// WithWorkers sets the batch worker pool size.
func WithWorkers(n int) Option {
	return func(s *Suite) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithObserver attaches an observer tree; the suite reports into one child
// per axis (structure, editorial, task, judge).
func WithObserver(obs *evals.NamespacedObserver[evals.Observer]) Option {
	return func(s *Suite) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// WithMaxTurns overrides the per-conversation turn bound.
func WithMaxTurns(n int) Option {
	return func(s *Suite) {
		if n > 0 {
			s.maxTurns = n
		}
	}
}

// New creates a Suite with defaults: default structural config and
// editorial rules, no judge, a log-only observer, and 4 batch workers.
func New(opts ...Option) *Suite {
	s := &Suite{
		structureConfig: structure.DefaultConfig(),
		editorial:       editorial.NewDefaultChecker(),
		judgeTimeout:    DefaultJudgeTimeout,
		workers:         DefaultWorkers,
		maxTurns:        task.DefaultMaxTurns,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.observer == nil {
		s.observer = evals.NewNamespacedObserver(func(name string) evals.Observer {
			return evals.NewLogObserver(context.Background(), name)
		})
	}
	return s
}

var tracer = otel.Tracer("chainguard.ai.docpair/suite")

// Evaluate scores one row across all axes. Judge and responder failures
// are recorded in the result rather than returned, so batches keep going.
func (s *Suite) Evaluate(ctx context.Context, row Row) PairResult {
	ctx, span := tracer.Start(ctx, "suite.Evaluate")
	defer span.End()
	span.SetAttributes(attribute.String("pair.id", row.ID))

	log := clog.FromContext(ctx).With("id", row.ID)

	result := PairResult{
		ID:        row.ID,
		Editorial: make(map[string]float64, 2),
		JudgeOK:   true,
	}

	// Structure axis.
	gold := outline.Extract(row.GoldDoc)
	cand := outline.Extract(row.CandidateDoc)
	result.Structure = structure.Compare(gold, cand, s.structureConfig)
	structureObs := s.observer.Child("structure")
	structureObs.Increment()
	structureObs.Grade(result.Structure.Aggregate, "aggregate structural similarity")

	// Editorial axis: deterministic rules, then the judge if configured.
	ruleScore := s.editorial.Score(row.CandidateDoc)
	result.Editorial[EditorialRules] = ruleScore
	editorialObs := s.observer.Child("editorial")
	editorialObs.Increment()
	editorialObs.Grade(ruleScore, "editorial rule score")

	if s.judge != nil {
		score, ok := s.judgeScore(ctx, row)
		result.Editorial[EditorialJudge] = score
		result.JudgeOK = ok
		judgeObs := s.observer.Child("judge")
		judgeObs.Increment()
		if ok {
			judgeObs.Grade(score, "judge actionability score")
		} else {
			judgeObs.Fail(fmt.Sprintf("judge unavailable for %s, score degraded to 0", row.ID))
		}
	}

	// Task axis: drive each conversation sequentially to termination.
	if len(row.Tasks) > 0 {
		result.Task, result.TaskErr = s.runTasks(ctx, row)
		taskObs := s.observer.Child("task")
		taskObs.Increment()
		if result.TaskErr != nil {
			taskObs.Fail(fmt.Sprintf("responder failed for %s: %v", row.ID, result.TaskErr))
		}
		taskObs.Grade(result.TaskReward(), "mean task reward")
	}

	log.With("structure", result.Structure.Aggregate).
		With("editorial_rules", ruleScore).
		With("judge_ok", result.JudgeOK).
		With("task_reward", result.TaskReward()).
		Info("Evaluated document pair")

	return result
}

// judgeScore calls the judge with the configured timeout. Retries happen
// inside the judge; on exhaustion the score degrades to zero.
func (s *Suite) judgeScore(ctx context.Context, row Row) (float64, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.judgeTimeout)
	defer cancel()

	judgement, err := s.judge.Judge(ctx, &judge.Request{Document: row.CandidateDoc})
	if err != nil {
		clog.FromContext(ctx).With("id", row.ID).With("error", err).
			Warn("Judge failed, degrading score to zero")
		return 0, false
	}
	return judgement.Score, true
}

// runTasks drives one conversation per task spec. A responder error stops
// the row's remaining tasks; they score zero.
func (s *Suite) runTasks(ctx context.Context, row Row) ([]float64, error) {
	rewards := make([]float64, len(row.Tasks))
	if s.responder == nil {
		return rewards, fmt.Errorf("row %s has %d tasks but no responder is configured", row.ID, len(row.Tasks))
	}

	for i, spec := range row.Tasks {
		conv := task.New(ctx, spec, row.CandidateDoc, task.WithMaxTurns(s.maxTurns))
		for !conv.Done() {
			response, err := s.responder(ctx, conv.Transcript())
			if err != nil {
				return rewards, fmt.Errorf("responder failed on task %d: %w", i, err)
			}
			if _, _, err := conv.Observe(ctx, response); err != nil {
				return rewards, fmt.Errorf("conversation %d: %w", i, err)
			}
		}
		rewards[i] = conv.Reward()
	}
	return rewards, nil
}

// EvaluateBatch evaluates rows on a bounded worker pool and returns the
// results in row order. Rows are independent; the only error source is
// context cancellation.
func (s *Suite) EvaluateBatch(ctx context.Context, rows []Row) ([]PairResult, error) {
	results := make([]PairResult, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Evaluate(ctx, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
