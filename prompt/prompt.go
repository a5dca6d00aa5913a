/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"fmt"
	"maps"
)

// stringLiteral is a private type that only accepts literal strings.
type stringLiteral string

// Prompt represents a template with bindable placeholders.
type Prompt struct {
	template string
	bindings map[string]binding
}

// NewPrompt creates a new prompt from a template literal and parses bindings.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)

	// Walk the template once to collect placeholder names; the walk output
	// is the template itself since each placeholder resolves to itself here.
	tmpl, err := walkTemplate(string(template), func(name string) (string, error) {
		if _, exists := bindings[name]; !exists {
			bindings[name] = &unboundBinding{name: name}
		}
		return fmt.Sprintf("{{%s}}", name), nil
	})
	if err != nil {
		return nil, err
	}

	return &Prompt{
		template: tmpl,
		bindings: bindings,
	}, nil
}

// GetBindings returns the names of all placeholders found in the template
// as a set.
func (p *Prompt) GetBindings() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindStringLiteral binds a literal string value to a placeholder.
// The value comes from the developer, not from runtime input.
// Returns a new Prompt with the binding applied.
func (p *Prompt) BindStringLiteral(name string, value stringLiteral) (*Prompt, error) {
	return p.bind(name, &literalBinding{val: string(value)})
}

// BindText binds runtime text to a placeholder. This is the entry point
// for document content and model output; the value is substituted verbatim
// and never re-tokenized.
func (p *Prompt) BindText(name, value string) (*Prompt, error) {
	return p.bind(name, &literalBinding{val: value})
}

// BindXML binds structured data to a placeholder by marshaling it as XML.
func (p *Prompt) BindXML(name string, data any) (*Prompt, error) {
	return p.bind(name, &xmlBinding{data: data})
}

// BindJSON binds structured data to a placeholder by marshaling it as JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, &jsonBinding{data: data})
}

// BindYAML binds structured data to a placeholder by marshaling it as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, &yamlBinding{data: data})
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	if err := existsAndUnbound(p.bindings, name); err != nil {
		return nil, err
	}
	newPrompt := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	newPrompt.bindings[name] = b
	return newPrompt, nil
}

// Build constructs the final prompt, returning an error if any bindings
// are unbound.
func (p *Prompt) Build() (string, error) {
	// Pre-compute all binding values to surface errors before substitution.
	values := make(map[string]string, len(p.bindings))
	for name, binding := range p.bindings {
		val, err := binding.value()
		if err != nil {
			return "", err
		}
		values[name] = val
	}

	return walkTemplate(p.template, func(name string) (string, error) {
		if val, exists := values[name]; exists {
			return val, nil
		}
		// Unreachable: NewPrompt and Build tokenize identically.
		return "", fmt.Errorf("internal error: binding %q not found in values map", name)
	})
}
