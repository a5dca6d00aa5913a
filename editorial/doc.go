/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package editorial scores documentation text against deterministic
// editorial rules: does the document declare prerequisites, pin dependency
// versions, and ship an error playbook?
//
// Rules are weighted regular-expression predicates over the lowercased
// document text. The default rule set mirrors the editorial rubric used for
// documentation review, but callers can supply their own rules to adapt the
// checker to another domain. Scoring is pure: no model calls, no I/O, same
// input same output.
package editorial
