/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema reflects Go types into JSON schemas that can be shown to
// models or written out for users authoring criteria by hand.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Option configures a Generator.
type Option func(*jsonschema.Reflector)

// WithReferences emits shared and recursive types as $defs entries referenced
// through $ref. Recursive types such as a criterion with sub-criteria need it.
func WithReferences() Option {
	return func(r *jsonschema.Reflector) {
		r.DoNotReference = false
		r.ExpandedStruct = false
	}
}

// WithStrictProperties rejects properties the reflected type does not declare.
func WithStrictProperties() Option {
	return func(r *jsonschema.Reflector) {
		r.AllowAdditionalProperties = false
	}
}

// Generator wraps jsonschema.Reflector with project defaults.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator. By default every type is inlined and
// required fields come from the jsonschema struct tags.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			DoNotReference:             true,
		},
	}
	for _, opt := range opts {
		opt(&g.reflector)
	}
	return g
}

// Reflect returns the JSON schema for the provided value.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Reflect derives the JSON schema for the provided value using a default generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType allocates a zero value of T and reflects it to a schema.
func ReflectType[T any](opts ...Option) *jsonschema.Schema {
	var zero T
	return NewGenerator(opts...).Reflect(&zero)
}

// Marshal renders a schema as two-space indented JSON.
func Marshal(s *jsonschema.Schema) (string, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(b), nil
}
