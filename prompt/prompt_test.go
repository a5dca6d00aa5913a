/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPromptCollectsBindings(t *testing.T) {
	p, err := NewPrompt(`Judge {{document}} against {{criterion}} and {{document}} again`)
	if err != nil {
		t.Fatalf("NewPrompt() error = %v", err)
	}

	want := map[string]struct{}{
		"document":  {},
		"criterion": {},
	}
	if diff := cmp.Diff(want, p.GetBindings()); diff != "" {
		t.Errorf("GetBindings() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPromptRejectsMalformedTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template stringLiteral
	}{{
		name:     "unclosed binding",
		template: `Hello {{name`,
	}, {
		name:     "empty identifier",
		template: `Hello {{}}`,
	}, {
		name:     "identifier starting with digit",
		template: `Hello {{1name}}`,
	}, {
		name:     "identifier with spaces",
		template: `Hello {{first name}}`,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPrompt(tc.template); err == nil {
				t.Error("NewPrompt() error = nil, want error")
			}
		})
	}
}

func TestBuildSubstitutesBindings(t *testing.T) {
	p := MustNewPrompt(`CRITERION: {{criterion}}

DOCUMENT:
{{document}}`)

	p = p.MustBindStringLiteral("criterion", "actionability")
	p = p.MustBindText("document", "# Install\n\nRun the installer.")

	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "CRITERION: actionability\n\nDOCUMENT:\n# Install\n\nRun the installer."
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildFailsOnUnboundPlaceholder(t *testing.T) {
	p := MustNewPrompt(`{{criterion}}: {{document}}`)
	p = p.MustBindStringLiteral("criterion", "actionability")

	if _, err := p.Build(); err == nil || !strings.Contains(err.Error(), "document") {
		t.Errorf("Build() error = %v, want unbound placeholder error naming document", err)
	}
}

func TestBindErrors(t *testing.T) {
	p := MustNewPrompt(`{{document}}`)

	if _, err := p.BindText("missing", "x"); err == nil {
		t.Error("BindText() on absent placeholder: error = nil, want error")
	}

	bound := p.MustBindText("document", "x")
	if _, err := bound.BindText("document", "y"); err == nil {
		t.Error("BindText() on already-bound placeholder: error = nil, want error")
	}
}

func TestBindReturnsNewPrompt(t *testing.T) {
	base := MustNewPrompt(`{{document}}`)
	_ = base.MustBindText("document", "first")

	// The base prompt is untouched; it can be specialized again.
	second := base.MustBindText("document", "second")
	got, err := second.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Build() = %q, want %q", got, "second")
	}
}

func TestBoundTextIsNotReTokenized(t *testing.T) {
	p := MustNewPrompt(`{{document}}`)
	p = p.MustBindText("document", "literal {{criterion}} stays put")

	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got != "literal {{criterion}} stays put" {
		t.Errorf("Build() = %q, placeholder syntax in bound text must not expand", got)
	}
}

func TestStructuredBindings(t *testing.T) {
	type entry struct {
		Level int    `json:"level" xml:"level" yaml:"level"`
		Title string `json:"title" xml:"title" yaml:"title"`
	}
	data := entry{Level: 2, Title: "install"}

	tests := []struct {
		name string
		bind func(*Prompt) (*Prompt, error)
		want string
	}{{
		name: "json",
		bind: func(p *Prompt) (*Prompt, error) { return p.BindJSON("payload", data) },
		want: `"title": "install"`,
	}, {
		name: "xml",
		bind: func(p *Prompt) (*Prompt, error) { return p.BindXML("payload", data) },
		want: `<title>install</title>`,
	}, {
		name: "yaml",
		bind: func(p *Prompt) (*Prompt, error) { return p.BindYAML("payload", data) },
		want: `title: install`,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := MustNewPrompt(`{{payload}}`)
			p, err := tc.bind(p)
			if err != nil {
				t.Fatalf("bind error = %v", err)
			}
			got, err := p.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !strings.Contains(got, tc.want) {
				t.Errorf("Build() = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}
