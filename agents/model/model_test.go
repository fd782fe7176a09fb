/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model_test

import (
	"context"
	"testing"

	"chainguard.dev/agenteval/agents/model"
)

func TestProviderFor(t *testing.T) {
	tests := []struct {
		model   string
		want    model.Provider
		wantErr bool
	}{
		{model: "claude-sonnet-4@20250514", want: model.Anthropic},
		{model: "Claude-3-5-haiku", want: model.Anthropic},
		{model: "gemini-2.5-flash", want: model.Google},
		{model: "gpt-4o", want: model.OpenAI},
		{model: "o3-mini", want: model.OpenAI},
		{model: "o1", want: model.OpenAI},
		{model: "ollama-llama3", wantErr: true},
		{model: "llama-3", wantErr: true},
		{model: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got, err := model.ProviderFor(tt.model)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProviderFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ProviderFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewCredentialChecks(t *testing.T) {
	ctx := context.Background()
	for _, cfg := range []model.Config{
		{Model: "mistral-large"},
		{Model: "claude-sonnet-4@20250514"},
		{Model: "gpt-4o"},
	} {
		if _, err := model.New(ctx, cfg); err == nil {
			t.Errorf("New(%+v) should fail", cfg)
		}
	}
}

func TestNewWithAPIKeys(t *testing.T) {
	ctx := context.Background()
	for _, cfg := range []model.Config{
		{Model: "claude-sonnet-4-20250514", AnthropicAPIKey: "key"},
		{Model: "gpt-4o", OpenAIAPIKey: "key", OpenAIBaseURL: "http://localhost:11434/v1/"},
		{Model: "gemini-2.5-flash", GoogleAPIKey: "key"},
	} {
		client, err := model.New(ctx, cfg)
		if err != nil {
			t.Errorf("New(%s) = %v", cfg.Model, err)
			continue
		}
		if client == nil {
			t.Errorf("New(%s) returned a nil client", cfg.Model)
		}
	}
}
