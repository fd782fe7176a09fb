/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

import (
	"encoding/json"
	"errors"
	"fmt"

	"chainguard.dev/agenteval/agents/result"
)

var errNullList = errors.New("criteria document is null")

// Parse decodes a JSON array of criterion objects.
//
// Every element must carry name, description and accepted_values. Nested
// sub_criteria follow the same rule and default to empty. Unknown fields are
// ignored. Failures are reported as *result.ParseError.
func Parse(text string) ([]Criterion, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(text), &raws); err != nil {
		return nil, result.NewParseError(result.KindDecode, text, err)
	}
	if raws == nil {
		return nil, result.NewParseError(result.KindDecode, text, errNullList)
	}

	out := make([]Criterion, 0, len(raws))
	for i, raw := range raws {
		var c Criterion
		if err := c.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("criterion %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Serialize encodes criteria as a two-space indented JSON array. Keys appear
// in the order name, description, accepted_values, sub_criteria and both
// lists are always present.
func Serialize(criteria []Criterion) (string, error) {
	if criteria == nil {
		criteria = []Criterion{}
	}
	b, err := marshal(criteria, "  ")
	if err != nil {
		return "", fmt.Errorf("serializing criteria: %w", err)
	}
	return string(b), nil
}
