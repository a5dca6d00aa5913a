/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package prompt builds judge prompts from templates with explicit,
// once-only placeholder bindings.
//
// Templates use {{name}} placeholders. Developer-authored fragments bind
// through BindStringLiteral, which only accepts untyped string constants;
// document text and other runtime data bind through BindText or the
// structured BindXML/BindJSON/BindYAML helpers. Substituted values are
// never re-tokenized, so placeholder syntax inside a document cannot
// expand. Build fails if any placeholder is still unbound.
//
// Prompts are immutable: every Bind call returns a new Prompt, so a base
// template can be shared and specialized per evaluation without locks.
package prompt
