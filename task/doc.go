/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package task verifies that a model can complete real tasks using only a
// candidate document: quoting an exact span, reproducing a procedure in
// order, or arguing a rationale at sufficient depth.
//
// The package has two layers. Check is a pure predicate dispatching on the
// task type; it never errors and fails closed on anything malformed. The
// Conversation type drives a bounded multi-turn exchange over a checker:
// a correct response succeeds immediately, a wrong response earns exactly
// one hint and one retry, and a second wrong response fails the task. The
// reward is binary.
//
// Turns within one Conversation must be observed sequentially; distinct
// conversations are independent and safe to run in parallel.
package task
