/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"slices"
)

// stringLiteral only admits untyped string constants from callers outside this package.
type stringLiteral string

// Prompt is an immutable template plus the values bound to its placeholders.
type Prompt struct {
	template string
	bindings map[string]binding
}

// NewPrompt parses template and records its placeholders as unbound.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)
	if _, err := walkTemplate(string(template), func(name string) (string, error) {
		bindings[name] = unbound(name)
		return "", nil
	}); err != nil {
		return nil, err
	}
	return &Prompt{template: string(template), bindings: bindings}, nil
}

// Placeholders returns the sorted names of every placeholder in the template.
func (p *Prompt) Placeholders() []string {
	return slices.Sorted(maps.Keys(p.bindings))
}

// BindStringLiteral substitutes a developer-supplied literal for name.
func (p *Prompt) BindStringLiteral(name string, value stringLiteral) (*Prompt, error) {
	return p.bind(name, literal(value))
}

// BindJSON substitutes data rendered as two-space indented JSON for name.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, jsonValue{data: data})
}

// BindYAML substitutes data rendered as YAML for name.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, yamlValue{data: data})
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	current, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("binding %q not found in template", name)
	}
	if _, isUnbound := current.(unbound); !isUnbound {
		return nil, fmt.Errorf("binding %q already bound", name)
	}
	next := &Prompt{template: p.template, bindings: maps.Clone(p.bindings)}
	next.bindings[name] = b
	return next, nil
}

// Build renders the template. It fails if any placeholder is still unbound or
// a structured value cannot be marshaled.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for _, name := range p.Placeholders() {
		v, err := p.bindings[name].render()
		if err != nil {
			return "", err
		}
		values[name] = v
	}
	return walkTemplate(p.template, func(name string) (string, error) {
		return values[name], nil
	})
}
