/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main evaluates a JSONL dataset of document pairs and prints a
// per-axis summary table. The exit code reflects the threshold gate, so
// the binary slots into CI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chainguard.dev/docpair/evals"
	"chainguard.dev/docpair/judge"
	"chainguard.dev/docpair/report"
	"chainguard.dev/docpair/suite"
	"chainguard.dev/docpair/task"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	// Dataset is the path to the JSONL dataset of document pairs.
	Dataset string `env:"DATASET,required"`

	// Workers bounds the batch worker pool.
	Workers int `env:"WORKERS,default=4"`

	// Judge selects the editorial judge backend: off, claude, or openai.
	Judge string `env:"JUDGE,default=off"`

	// Model overrides the judge's default model.
	Model string `env:"MODEL"`

	// JudgeTimeout bounds one judge call, including retries.
	JudgeTimeout time.Duration `env:"JUDGE_TIMEOUT,default=30s"`

	// Threshold is the per-axis pass bar for the summary gate.
	Threshold float64 `env:"THRESHOLD,default=0.5"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	rows, err := suite.LoadDataset(ctx, cfg.Dataset)
	if err != nil {
		clog.FatalContextf(ctx, "loading dataset: %v", err)
	}
	clog.InfoContextf(ctx, "Loaded %d document pairs from %s", len(rows), cfg.Dataset)

	// Collectors wrap the per-axis metrics observers so failures can be
	// replayed after the summary, where they are easiest to act on.
	observer := evals.NewNamespacedObserver(func(name string) evals.Observer {
		return evals.NewResultCollector(evals.NewMetricsObserver(strings.Trim(name, "/"), name))
	})

	opts := []suite.Option{
		suite.WithWorkers(cfg.Workers),
		suite.WithJudgeTimeout(cfg.JudgeTimeout),
		suite.WithObserver(observer),
		suite.WithResponder(documentBaseline),
	}

	switch cfg.Judge {
	case "off", "":
	case "claude":
		var jopts []judge.Option
		if cfg.Model != "" {
			jopts = append(jopts, judge.WithModel(cfg.Model))
		}
		opts = append(opts, suite.WithJudge(judge.NewClaude(anthropic.NewClient(), jopts...)))
		clog.InfoContextf(ctx, "Editorial judge: claude")
	case "openai":
		var jopts []judge.Option
		if cfg.Model != "" {
			jopts = append(jopts, judge.WithModel(cfg.Model))
		}
		opts = append(opts, suite.WithJudge(judge.NewOpenAI(openai.NewClient(), jopts...)))
		clog.InfoContextf(ctx, "Editorial judge: openai")
	default:
		clog.FatalContextf(ctx, "unknown JUDGE %q (want off, claude, or openai)", cfg.Judge)
	}

	s := suite.New(opts...)
	results, err := s.EvaluateBatch(ctx, rows)
	if err != nil {
		clog.FatalContextf(ctx, "evaluating batch: %v", err)
	}

	summary, belowThreshold := report.Summary(results, cfg.Threshold)
	fmt.Println(summary)

	observer.Walk(func(name string, o evals.Observer) {
		rc, ok := o.(*evals.ResultCollector)
		if !ok {
			return
		}
		for _, msg := range rc.Failures() {
			clog.WarnContextf(ctx, "%s: %s", name, msg)
		}
	})

	if belowThreshold {
		clog.ErrorContextf(ctx, "One or more axes fell below the %.2f threshold", cfg.Threshold)
		os.Exit(1)
	}
}

// documentBaseline answers every task with the conversation's opening
// prompt, which embeds the candidate document. This scores whether the
// document itself supports the task (the span is present, the steps are in
// order) without driving a model.
func documentBaseline(ctx context.Context, transcript []task.Message) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("empty transcript")
	}
	return transcript[0].Content, nil
}
