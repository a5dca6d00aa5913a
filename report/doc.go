/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders batch evaluation results as markdown tables and
// applies a pass/fail threshold per axis.
package report
