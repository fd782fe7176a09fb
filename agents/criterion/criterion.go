/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"chainguard.dev/agenteval/agents/result"
)

// Criterion is one axis along which a task outcome is judged.
type Criterion struct {
	// Name is a short identifier, unique within its list.
	Name string `json:"name" jsonschema:"required,description=Short identifier of the criterion"`

	// Description explains what the criterion measures.
	Description string `json:"description" jsonschema:"required,description=What the criterion measures"`

	// AcceptedValues lists the admissible judgments ordered best to worst.
	AcceptedValues []Value `json:"accepted_values" jsonschema:"required,description=Admissible judgments ordered from best to worst"`

	// SubCriteria refines this criterion into finer-grained criteria.
	SubCriteria []Criterion `json:"sub_criteria" jsonschema:"description=Finer-grained criteria refining this one"`
}

// Equal reports whether c and o are structurally identical.
func (c Criterion) Equal(o Criterion) bool {
	return c.Name == o.Name &&
		c.Description == o.Description &&
		slices.EqualFunc(c.AcceptedValues, o.AcceptedValues, Value.Equal) &&
		slices.EqualFunc(c.SubCriteria, o.SubCriteria, Criterion.Equal)
}

// Accepts reports whether v is one of the accepted values.
func (c Criterion) Accepts(v Value) bool {
	return slices.ContainsFunc(c.AcceptedValues, v.Equal)
}

// MarshalJSON implements json.Marshaler. Both lists are always emitted,
// as [] when empty, with keys in declaration order.
func (c Criterion) MarshalJSON() ([]byte, error) {
	type plain Criterion
	p := plain(c)
	if p.AcceptedValues == nil {
		p.AcceptedValues = []Value{}
	}
	if p.SubCriteria == nil {
		p.SubCriteria = []Criterion{}
	}
	return marshal(p, "")
}

// wireCriterion mirrors Criterion with the presence of every field observable.
type wireCriterion struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	AcceptedValues *[]json.RawMessage `json:"accepted_values"`
	SubCriteria    []json.RawMessage  `json:"sub_criteria"`
}

// UnmarshalJSON implements json.Unmarshaler. It requires name, description
// and accepted_values; sub_criteria may be absent or null.
func (c *Criterion) UnmarshalJSON(data []byte) error {
	var w wireCriterion
	if err := json.Unmarshal(data, &w); err != nil {
		return result.NewParseError(result.KindDecode, string(data), err)
	}
	switch {
	case w.Name == nil:
		return missing(data, "name")
	case w.Description == nil:
		return missing(data, "description")
	case w.AcceptedValues == nil:
		return missing(data, "accepted_values")
	}

	out := Criterion{
		Name:           *w.Name,
		Description:    *w.Description,
		AcceptedValues: make([]Value, 0, len(*w.AcceptedValues)),
		SubCriteria:    make([]Criterion, 0, len(w.SubCriteria)),
	}
	for _, raw := range *w.AcceptedValues {
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return result.NewParseError(result.KindInvalidValue, string(data),
				fmt.Errorf("criterion %q accepted_values: %w", out.Name, err))
		}
		out.AcceptedValues = append(out.AcceptedValues, v)
	}
	for _, raw := range w.SubCriteria {
		var sub Criterion
		if err := sub.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("criterion %q sub_criteria: %w", out.Name, err)
		}
		out.SubCriteria = append(out.SubCriteria, sub)
	}
	*c = out
	return nil
}

func missing(data []byte, field string) error {
	return result.NewParseError(result.KindMissingField, string(data),
		fmt.Errorf("required field %q is missing", field))
}

// marshal encodes v without HTML escaping, optionally indented.
func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
