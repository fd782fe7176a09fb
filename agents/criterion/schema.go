/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

import (
	"github.com/invopop/jsonschema"

	"chainguard.dev/agenteval/agents/schema"
)

// JSONSchema describes Value as a string or a number.
func (Value) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number"},
		},
	}
}

// Schema returns the JSON schema of a criteria list as accepted by Parse.
func Schema() *jsonschema.Schema {
	return schema.ReflectType[[]Criterion](schema.WithReferences())
}
