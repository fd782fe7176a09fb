/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlemodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/metrics"
	"chainguard.dev/agenteval/agents/model/retry"
)

// DefaultModel is used when WithModel is not given.
const DefaultModel = "gemini-2.5-flash"

type client struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	retry           retry.Config
	metrics         *metrics.GenAI
}

var _ chat.Client = (*client)(nil)

// New wraps a Gen AI client as a chat.Client.
func New(c *genai.Client, opts ...Option) (chat.Client, error) {
	if c == nil {
		return nil, errors.New("genai client cannot be nil")
	}
	cl := &client{
		client:          c,
		model:           DefaultModel,
		temperature:     0.1,
		maxOutputTokens: 8192,
		retry:           retry.DefaultConfig(),
		metrics:         metrics.NewGenAI(metrics.MeterName),
	}
	for _, opt := range opts {
		if err := opt(cl); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return cl, nil
}

// Complete implements chat.Client.
func (c *client) Complete(ctx context.Context, req *chat.Request) (resp *chat.Response, err error) {
	defer func() { c.metrics.RecordRequest(ctx, c.model, err) }()

	if len(req.Turns) == 0 {
		return nil, errors.New("request has no turns")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     ptr(c.temperature),
		MaxOutputTokens: c.maxOutputTokens,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	response, err := retry.Do(ctx, c.retry, "generate_content", isRetryable, func() (*genai.GenerateContentResponse, error) {
		return c.client.Models.GenerateContent(ctx, c.model, toContents(req.EndingWithUser()), config)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with model %q: %w", c.model, err)
	}

	var in, out int64
	if response.UsageMetadata != nil {
		in, out = int64(response.UsageMetadata.PromptTokenCount), int64(response.UsageMetadata.CandidatesTokenCount)
		c.metrics.RecordTokens(ctx, c.model, in, out)
	}

	content, err := textOf(response)
	if err != nil {
		return nil, err
	}
	clog.FromContext(ctx).With("model", c.model).
		With("response_length", len(content)).
		Debug("Gemini completion finished")

	return &chat.Response{Content: content, InputTokens: in, OutputTokens: out}, nil
}

func toContents(turns []chat.Turn) []*genai.Content {
	out := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Speaker == chat.Assistant {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: t.Content}},
		})
	}
	return out
}

// textOf joins the non-thought text parts of the first candidate.
func textOf(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", errors.New("no content generated - no candidates")
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated - finish reason %q", candidate.FinishReason)
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// isRetryable checks if an error is a retryable Vertex AI error.
// Returns true for rate limit, quota exhaustion, and transient server errors.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	for _, marker := range []string{
		"Resource exhausted", "RESOURCE_EXHAUSTED", "429", "rate limit",
		"quota exceeded", "Overloaded", "503", "Internal error", "server error",
	} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T {
	return &v
}
