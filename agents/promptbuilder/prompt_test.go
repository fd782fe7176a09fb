/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template stringLiteral
		want     []string
		wantErr  string
	}{{
		name:     "no placeholders",
		template: "You are a helpful assistant.",
		want:     nil,
	}, {
		name:     "repeated placeholder",
		template: "{{a}} and {{ b }} and {{a}}",
		want:     []string{"a", "b"},
	}, {
		name:     "underscores and digits",
		template: "{{task_2}}",
		want:     []string{"task_2"},
	}, {
		name:     "unclosed",
		template: "Hello {{name",
		wantErr:  "unclosed binding",
	}, {
		name:     "empty name",
		template: "Hello {{ }}",
		wantErr:  "invalid binding identifier",
	}, {
		name:     "leading digit",
		template: "{{1st}}",
		wantErr:  "invalid binding identifier",
	}, {
		name:     "punctuation",
		template: "{{a-b}}",
		wantErr:  "invalid binding identifier",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrompt(tt.template)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("NewPrompt() error = %v, wanted %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrompt() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Placeholders()); diff != "" {
				t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	type example struct {
		Name   string   `json:"name" yaml:"name"`
		Values []string `json:"values" yaml:"values"`
	}
	data := example{Name: "accuracy", Values: []string{"Good", "Poor"}}

	tests := []struct {
		name    string
		prompt  func() (*Prompt, error)
		want    string
		wantErr string
	}{{
		name: "literal",
		prompt: func() (*Prompt, error) {
			return MustNewPrompt("Say {{token}} when done.").BindStringLiteral("token", "TERMINATE")
		},
		want: "Say TERMINATE when done.",
	}, {
		name: "json",
		prompt: func() (*Prompt, error) {
			return MustNewPrompt("Example:\n{{example}}").BindJSON("example", data)
		},
		want: "Example:\n{\n  \"name\": \"accuracy\",\n  \"values\": [\n    \"Good\",\n    \"Poor\"\n  ]\n}",
	}, {
		name: "yaml",
		prompt: func() (*Prompt, error) {
			return MustNewPrompt("Example:\n{{example}}").BindYAML("example", data)
		},
		want: "Example:\nname: accuracy\nvalues:\n    - Good\n    - Poor",
	}, {
		name: "bound text is not rescanned",
		prompt: func() (*Prompt, error) {
			return MustNewPrompt("{{a}} {{b}}").MustBindStringLiteral("a", "{{b}}").BindStringLiteral("b", "x")
		},
		want: "{{b}} x",
	}, {
		name: "unbound placeholder",
		prompt: func() (*Prompt, error) {
			return MustNewPrompt("{{a}} {{b}}").BindStringLiteral("a", "x")
		},
		wantErr: "unbound placeholder: b",
	}, {
		name: "unmarshalable json",
		prompt: func() (*Prompt, error) {
			return MustNewPrompt("{{a}}").BindJSON("a", make(chan int))
		},
		wantErr: "failed to marshal JSON",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.prompt()
			if err != nil {
				t.Fatalf("binding error = %v", err)
			}
			got, err := p.Build()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Build() error = %v, wanted %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindErrors(t *testing.T) {
	p := MustNewPrompt("{{a}}")

	if _, err := p.BindStringLiteral("missing", "x"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("binding an unknown name: error = %v", err)
	}

	bound := p.MustBindStringLiteral("a", "x")
	if _, err := bound.BindJSON("a", 1); err == nil || !strings.Contains(err.Error(), "already bound") {
		t.Errorf("binding twice: error = %v", err)
	}

	// The original prompt is untouched by binding.
	if _, err := p.Build(); err == nil {
		t.Error("original prompt should still be unbound")
	}
	if got, err := bound.Build(); err != nil || got != "x" {
		t.Errorf("bound.Build() = %q, %v", got, err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewPrompt should panic on an invalid template")
		}
	}()
	MustNewPrompt("{{unclosed")
}
