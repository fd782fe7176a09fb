/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chainguard.dev/agenteval/agents/result"
)

func strs(vals ...string) []Value {
	out := make([]Value, 0, len(vals))
	for _, v := range vals {
		out = append(out, String(v))
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []Criterion
		wantKind result.Kind
	}{{
		name:  "empty list",
		input: `[]`,
		want:  []Criterion{},
	}, {
		name:  "flat criterion",
		input: `[{"name": "accuracy", "description": "Is it right?", "accepted_values": ["Excellent", "Good", "Poor"]}]`,
		want: []Criterion{{
			Name:           "accuracy",
			Description:    "Is it right?",
			AcceptedValues: strs("Excellent", "Good", "Poor"),
			SubCriteria:    []Criterion{},
		}},
	}, {
		name:  "mixed scalar values",
		input: `[{"name": "n", "description": "d", "accepted_values": [5, 2.5, "none"]}]`,
		want: []Criterion{{
			Name:           "n",
			Description:    "d",
			AcceptedValues: []Value{Int(5), Float(2.5), String("none")},
			SubCriteria:    []Criterion{},
		}},
	}, {
		name: "nested sub criteria",
		input: `[{"name": "efficiency", "description": "d", "accepted_values": ["high", "low"],
			"sub_criteria": [{"name": "speed", "description": "s", "accepted_values": [1, 0]}]}]`,
		want: []Criterion{{
			Name:           "efficiency",
			Description:    "d",
			AcceptedValues: strs("high", "low"),
			SubCriteria: []Criterion{{
				Name:           "speed",
				Description:    "s",
				AcceptedValues: []Value{Int(1), Int(0)},
				SubCriteria:    []Criterion{},
			}},
		}},
	}, {
		name:  "null sub criteria and unknown fields",
		input: `[{"name": "n", "description": "d", "accepted_values": ["a"], "sub_criteria": null, "weight": 3}]`,
		want: []Criterion{{
			Name:           "n",
			Description:    "d",
			AcceptedValues: strs("a"),
			SubCriteria:    []Criterion{},
		}},
	}, {
		name:     "missing name",
		input:    `[{"description": "d", "accepted_values": ["a"]}]`,
		wantKind: result.KindMissingField,
	}, {
		name:     "missing description",
		input:    `[{"name": "n", "accepted_values": ["a"]}]`,
		wantKind: result.KindMissingField,
	}, {
		name:     "missing accepted values",
		input:    `[{"name": "n", "description": "d"}]`,
		wantKind: result.KindMissingField,
	}, {
		name:     "null accepted values",
		input:    `[{"name": "n", "description": "d", "accepted_values": null}]`,
		wantKind: result.KindMissingField,
	}, {
		name:     "missing field in sub criterion",
		input:    `[{"name": "n", "description": "d", "accepted_values": ["a"], "sub_criteria": [{"name": "s"}]}]`,
		wantKind: result.KindMissingField,
	}, {
		name:  "boolean accepted values",
		input: `[{"name": "n", "description": "d", "accepted_values": [true, false]}]`,
		want: []Criterion{{
			Name:           "n",
			Description:    "d",
			AcceptedValues: []Value{Int(1), Int(0)},
			SubCriteria:    []Criterion{},
		}},
	}, {
		name:     "nested list accepted value",
		input:    `[{"name": "n", "description": "d", "accepted_values": [["a"]]}]`,
		wantKind: result.KindInvalidValue,
	}, {
		name:     "not json",
		input:    `criteria: accuracy`,
		wantKind: result.KindDecode,
	}, {
		name:     "object instead of array",
		input:    `{"name": "n", "description": "d", "accepted_values": ["a"]}`,
		wantKind: result.KindDecode,
	}, {
		name:     "null document",
		input:    `null`,
		wantKind: result.KindDecode,
	}, {
		name:     "element is not an object",
		input:    `["accuracy"]`,
		wantKind: result.KindDecode,
	}, {
		name:     "name is not a string",
		input:    `[{"name": 3, "description": "d", "accepted_values": ["a"]}]`,
		wantKind: result.KindDecode,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantKind != "" {
				var perr *result.ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Parse() error = %v, wanted *result.ParseError", err)
				}
				if perr.Kind != tt.wantKind {
					t.Errorf("Kind = %q, wanted %q (%v)", perr.Kind, tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	got, err := Serialize([]Criterion{{
		Name:           "clarity",
		Description:    "Is the <answer> clear & concise?",
		AcceptedValues: []Value{String("high"), Float(0.5), Int(0)},
	}})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	want := `[
  {
    "name": "clarity",
    "description": "Is the <answer> clear & concise?",
    "accepted_values": [
      "high",
      0.5,
      0
    ],
    "sub_criteria": []
  }
]`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeKeepsHTMLCharacters(t *testing.T) {
	in := []Criterion{{
		Name:           "a<b",
		Description:    "x > y && y < z",
		AcceptedValues: []Value{String("<ok>"), String("&")},
	}}
	got, err := Serialize(in)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	for _, s := range []string{`"a<b"`, `"x > y && y < z"`, `"<ok>"`, `"&"`} {
		if !strings.Contains(got, s) {
			t.Errorf("Serialize() = %s, wanted it to contain %s", got, s)
		}
	}
	if strings.Contains(got, `\u00`) {
		t.Errorf("Serialize() escaped HTML characters: %s", got)
	}

	back, err := Parse(got)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeEmpty(t *testing.T) {
	for _, in := range [][]Criterion{nil, {}} {
		got, err := Serialize(in)
		if err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		if got != "[]" {
			t.Errorf("Serialize(%#v) = %q, want []", in, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	criteria := []Criterion{{
		Name:           "accuracy",
		Description:    "Is the final answer correct?",
		AcceptedValues: strs("Excellent", "Good", "Average", "Poor"),
	}, {
		Name:           "steps",
		Description:    "How many reasoning steps were shown?",
		AcceptedValues: []Value{Int(5), Int(3), Int(1), Float(0.5)},
	}, {
		Name:           "tone",
		Description:    "Does the answer use \"polite\" language?",
		AcceptedValues: strs("yes", "no"),
		SubCriteria: []Criterion{{
			Name:           "greeting",
			Description:    "Opens with a greeting.",
			AcceptedValues: strs("present", "absent"),
		}},
	}}

	text, err := Serialize(criteria)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	got, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != len(criteria) {
		t.Fatalf("got %d criteria, want %d", len(got), len(criteria))
	}
	for i := range criteria {
		if !criteria[i].Equal(got[i]) {
			t.Errorf("criterion %d: got %+v, want %+v", i, got[i], criteria[i])
		}
	}

	// Floats that happen to be integral stay floats.
	again, err := Parse(`[{"name": "f", "description": "d", "accepted_values": [2.0]}]`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	text, err = Serialize(again)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(text, "2.0") {
		t.Errorf("Serialize() = %s, wanted 2.0 preserved", text)
	}
}

func TestAccepts(t *testing.T) {
	c := Criterion{AcceptedValues: []Value{String("a"), Int(1)}}
	if !c.Accepts(String("a")) || !c.Accepts(Float(1)) {
		t.Error("Accepts() should match listed values")
	}
	if c.Accepts(String("1")) || c.Accepts(String("b")) {
		t.Error("Accepts() should not match unlisted values")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Criterion{{Name: "a", AcceptedValues: strs("x")}, {Name: "b", AcceptedValues: strs("y")}}); err != nil {
		t.Errorf("Validate() = %v, wanted nil", err)
	}

	err := Validate([]Criterion{{
		Name:           "a",
		AcceptedValues: strs("x"),
		SubCriteria: []Criterion{
			{Name: "s", AcceptedValues: strs("x")},
			{Name: "s"},
		},
	}, {
		Name:           "a",
		AcceptedValues: strs("x"),
	}})
	if err == nil {
		t.Fatal("Validate() = nil, wanted error")
	}
	for _, want := range []string{"a/s: duplicate criterion name", "a/s: no accepted values", "a: duplicate criterion name"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, wanted it to contain %q", err, want)
		}
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	if s.Type != "array" {
		t.Fatalf("schema type = %q, want array", s.Type)
	}
	if s.Items == nil || s.Items.Ref == "" {
		t.Fatalf("items should reference the Criterion definition, got %#v", s.Items)
	}
	def, ok := s.Definitions["Criterion"]
	if !ok {
		t.Fatalf("missing Criterion definition, have %v", s.Definitions)
	}
	want := []string{"name", "description", "accepted_values"}
	if diff := cmp.Diff(want, def.Required); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}
}
