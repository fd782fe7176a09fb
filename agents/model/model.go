/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package model constructs a chat.Client for a model name, choosing the
// provider SDK from the name's prefix.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/metrics"
	"chainguard.dev/agenteval/agents/model/claudemodel"
	"chainguard.dev/agenteval/agents/model/googlemodel"
	"chainguard.dev/agenteval/agents/model/openaimodel"
	"chainguard.dev/agenteval/agents/model/retry"
)

// Provider identifies the SDK serving a model.
type Provider string

const (
	Anthropic Provider = "anthropic"
	Google    Provider = "google"
	OpenAI    Provider = "openai"
)

// Config selects and authenticates a model.
type Config struct {
	// Model is the model name, for example claude-sonnet-4@20250514,
	// gemini-2.5-flash or gpt-4o.
	Model string

	// ProjectID and Region address Vertex AI, used for Claude and Gemini
	// models unless an API key is given.
	ProjectID string
	Region    string

	// AnthropicAPIKey talks to the Anthropic API directly instead of Vertex AI.
	AnthropicAPIKey string

	// GoogleAPIKey talks to the Gemini API directly instead of Vertex AI.
	GoogleAPIKey string

	// OpenAIAPIKey and OpenAIBaseURL configure OpenAI models. The base URL
	// may point at any compatible service.
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Retry overrides the default retry configuration when non-nil.
	Retry *retry.Config

	// Enricher adds attributes to token and request metrics.
	Enricher metrics.AttributeEnricher
}

// ProviderFor returns the provider serving model.
func ProviderFor(model string) (Provider, error) {
	m := strings.ToLower(model)
	switch {
	case strings.HasPrefix(m, "claude-"):
		return Anthropic, nil
	case strings.HasPrefix(m, "gemini-"):
		return Google, nil
	case strings.HasPrefix(m, "gpt-"), len(m) > 1 && m[0] == 'o' && m[1] >= '0' && m[1] <= '9':
		return OpenAI, nil
	default:
		return "", fmt.Errorf("unsupported model: %s (expected claude-*, gemini-*, gpt-* or o<N>*)", model)
	}
}

// New creates a chat.Client for cfg.Model.
func New(ctx context.Context, cfg Config) (chat.Client, error) {
	provider, err := ProviderFor(cfg.Model)
	if err != nil {
		return nil, err
	}

	switch provider {
	case Anthropic:
		return newClaude(ctx, cfg)
	case Google:
		return newGoogle(ctx, cfg)
	default:
		return newOpenAI(cfg)
	}
}

func newClaude(ctx context.Context, cfg Config) (chat.Client, error) {
	var client anthropic.Client
	if cfg.AnthropicAPIKey != "" {
		client = anthropic.NewClient(anthropicoption.WithAPIKey(cfg.AnthropicAPIKey))
	} else {
		if cfg.ProjectID == "" || cfg.Region == "" {
			return nil, fmt.Errorf("model %s needs a project and region or an Anthropic API key", cfg.Model)
		}
		client = anthropic.NewClient(vertex.WithGoogleAuth(ctx, cfg.Region, cfg.ProjectID))
	}

	opts := []claudemodel.Option{claudemodel.WithModel(cfg.Model)}
	if cfg.Retry != nil {
		opts = append(opts, claudemodel.WithRetryConfig(*cfg.Retry))
	}
	if cfg.Enricher != nil {
		opts = append(opts, claudemodel.WithAttributeEnricher(cfg.Enricher))
	}
	return claudemodel.New(client, opts...)
}

func newGoogle(ctx context.Context, cfg Config) (chat.Client, error) {
	cc := &genai.ClientConfig{
		Project:  cfg.ProjectID,
		Location: cfg.Region,
		Backend:  genai.BackendVertexAI,
	}
	if cfg.GoogleAPIKey != "" {
		cc = &genai.ClientConfig{
			APIKey:  cfg.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating Google AI client: %w", err)
	}

	opts := []googlemodel.Option{googlemodel.WithModel(cfg.Model)}
	if cfg.Retry != nil {
		opts = append(opts, googlemodel.WithRetryConfig(*cfg.Retry))
	}
	if cfg.Enricher != nil {
		opts = append(opts, googlemodel.WithAttributeEnricher(cfg.Enricher))
	}
	return googlemodel.New(client, opts...)
}

func newOpenAI(cfg Config) (chat.Client, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("model %s needs an OpenAI API key", cfg.Model)
	}
	reqOpts := []openaioption.RequestOption{openaioption.WithAPIKey(cfg.OpenAIAPIKey)}
	if cfg.OpenAIBaseURL != "" {
		reqOpts = append(reqOpts, openaioption.WithBaseURL(cfg.OpenAIBaseURL))
	}

	opts := []openaimodel.Option{openaimodel.WithModel(cfg.Model)}
	if cfg.Retry != nil {
		opts = append(opts, openaimodel.WithRetryConfig(*cfg.Retry))
	}
	if cfg.Enricher != nil {
		opts = append(opts, openaimodel.WithAttributeEnricher(cfg.Enricher))
	}
	return openaimodel.New(openai.NewClient(reqOpts...), opts...)
}
