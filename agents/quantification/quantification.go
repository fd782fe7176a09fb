/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package quantification models the per-criterion judgments returned by a
// quantifier agent.
//
// The two directions of the wire format differ on purpose. A quantifier answers
// with a JSON object mapping criterion names to judgments:
//
//	{"accuracy": "Good", "steps": 3}
//
// Parse reads that object, keeping the document's key order. Serialize writes
// the list form instead:
//
//	[
//	  {
//	    "name": "accuracy",
//	    "results": "Good"
//	  }
//	]
package quantification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/agenteval/agents/result"
)

// Quantification is the judgment given for one criterion in one run.
type Quantification struct {
	// Name matches a criterion name by convention only.
	Name string `json:"name"`

	// Results is the judgment, one of the criterion's accepted values when the
	// quantifier follows instructions.
	Results criterion.Value `json:"results"`
}

// Parse decodes a JSON object of criterion name to scalar judgment.
func Parse(text string) ([]Quantification, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, result.NewParseError(result.KindDecode, text, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, result.NewParseError(result.KindDecode, text, fmt.Errorf("expected a JSON object, got %v", tok))
	}

	var out []Quantification
	// A repeated key keeps its first position and its last value.
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, result.NewParseError(result.KindDecode, text, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, result.NewParseError(result.KindDecode, text, fmt.Errorf("unexpected key %v", tok))
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, result.NewParseError(result.KindDecode, text, err)
		}
		v, err := criterion.ValueOf(tok)
		if err != nil {
			return nil, result.NewParseError(result.KindInvalidValue, text, fmt.Errorf("judgment for %q: %w", name, err))
		}
		if i, dup := index[name]; dup {
			out[i].Results = v
			continue
		}
		index[name] = len(out)
		out = append(out, Quantification{Name: name, Results: v})
	}

	if _, err := dec.Token(); err != nil {
		return nil, result.NewParseError(result.KindDecode, text, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, result.NewParseError(result.KindDecode, text, errors.New("trailing data after JSON object"))
	}
	if out == nil {
		out = []Quantification{}
	}
	return out, nil
}

// Serialize encodes quantifications as a two-space indented JSON array of
// {"name", "results"} objects.
func Serialize(qs []Quantification) (string, error) {
	if qs == nil {
		qs = []Quantification{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qs); err != nil {
		return "", fmt.Errorf("serializing quantifications: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Lookup indexes quantifications by name. When a name repeats, the last
// judgment wins.
func Lookup(qs []Quantification) map[string]criterion.Value {
	out := make(map[string]criterion.Value, len(qs))
	for _, q := range qs {
		out[q.Name] = q.Results
	}
	return out
}
