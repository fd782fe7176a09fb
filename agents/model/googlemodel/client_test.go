/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlemodel

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"google.golang.org/genai"

	"chainguard.dev/agenteval/agents/chat"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "resource exhausted", err: errors.New("Error 429, Message: Resource exhausted"), want: true},
		{name: "quota status", err: errors.New("RESOURCE_EXHAUSTED: quota exceeded"), want: true},
		{name: "overloaded", err: errors.New("503 Service Unavailable: Overloaded"), want: true},
		{name: "internal", err: errors.New("Internal error encountered."), want: true},
		{name: "permission", err: errors.New("403 PERMISSION_DENIED"), want: false},
		{name: "invalid argument", err: errors.New("400 INVALID_ARGUMENT: bad schema"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestToContents(t *testing.T) {
	got := toContents([]chat.Turn{
		{Speaker: chat.User, Content: "task"},
		{Speaker: chat.Assistant, Content: "draft"},
	})
	if len(got) != 2 {
		t.Fatalf("got %d contents, want 2", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "model" {
		t.Errorf("roles = %q, %q; want user, model", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "draft" {
		t.Errorf("text = %q, want draft", got[1].Parts[0].Text)
	}
}

func TestTextOf(t *testing.T) {
	tests := []struct {
		name     string
		response *genai.GenerateContentResponse
		want     string
		wantErr  bool
	}{{
		name: "skips thoughts",
		response: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: `{"accuracy": `},
				{Text: `"Good"}`},
			}},
		}}},
		want: `{"accuracy": "Good"}`,
	}, {
		name:     "no candidates",
		response: &genai.GenerateContentResponse{},
		wantErr:  true,
	}, {
		name: "empty content",
		response: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonSafety,
		}}},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textOf(tt.response)
			if (err != nil) != tt.wantErr {
				t.Fatalf("textOf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("textOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should fail")
	}
	c := &genai.Client{}
	for name, opt := range map[string]Option{
		"claude model":      WithModel("claude-sonnet-4"),
		"temperature":       WithTemperature(2.5),
		"max output tokens": WithMaxOutputTokens(0),
	} {
		if _, err := New(c, opt); err == nil {
			t.Errorf("%s: New() should reject the option", name)
		}
	}
	if _, err := New(c, WithModel("gemini-2.5-pro"), WithTemperature(0.5), WithMaxOutputTokens(1024)); err != nil {
		t.Errorf("New() = %v", err)
	}
}

func TestCompleteVertex(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping genai test in short mode.")
	}
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		t.Skip("Skipping integration test: GOOGLE_CLOUD_PROJECT is not set")
	}
	ctx := context.Background()

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: "us-central1",
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		t.Fatalf("genai.NewClient() = %v", err)
	}
	cl, err := New(gc)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	resp, err := cl.Complete(ctx, &chat.Request{
		System: "Answer with a single word.",
		Turns:  []chat.Turn{{Speaker: chat.User, Content: "What color is the sky on a clear day?"}},
	})
	if err != nil {
		t.Fatalf("Complete() = %v", err)
	}
	if !strings.Contains(strings.ToLower(resp.Content), "blue") {
		t.Errorf("Complete() = %q, wanted blue", resp.Content)
	}
}
