/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaimodel

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/metrics"
	"chainguard.dev/agenteval/agents/model/retry"
)

// DefaultModel is used when WithModel is not given.
const DefaultModel = "gpt-4o"

type client struct {
	client      openai.Client
	model       string
	temperature *float64
	maxTokens   int64
	retry       retry.Config
	metrics     *metrics.GenAI
}

var _ chat.Client = (*client)(nil)

// New wraps an OpenAI client as a chat.Client.
func New(c openai.Client, opts ...Option) (chat.Client, error) {
	cl := &client{
		client:    c,
		model:     DefaultModel,
		maxTokens: 8192,
		retry:     retry.DefaultConfig(),
		metrics:   metrics.NewGenAI(metrics.MeterName),
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

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		Messages:            toMessages(req.System, req.Turns),
		MaxCompletionTokens: openai.Int(c.maxTokens),
	}
	if c.temperature != nil {
		params.Temperature = openai.Float(*c.temperature)
	}

	completion, err := retry.Do(ctx, c.retry, "chat_completion", isRetryable, func() (*openai.ChatCompletion, error) {
		return c.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete chat with model %q: %w", c.model, err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("no content generated - no choices")
	}

	in, out := completion.Usage.PromptTokens, completion.Usage.CompletionTokens
	if in > 0 || out > 0 {
		c.metrics.RecordTokens(ctx, c.model, in, out)
	}

	choice := completion.Choices[0]
	clog.FromContext(ctx).With("model", c.model).
		With("finish_reason", choice.FinishReason).
		With("response_length", len(choice.Message.Content)).
		Debug("OpenAI completion finished")

	return &chat.Response{Content: choice.Message.Content, InputTokens: in, OutputTokens: out}, nil
}

func toMessages(system string, turns []chat.Turn) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	if system != "" {
		out = append(out, openai.SystemMessage(system))
	}
	for _, t := range turns {
		if t.Speaker == chat.Assistant {
			out = append(out, openai.AssistantMessage(t.Content))
		} else {
			out = append(out, openai.UserMessage(t.Content))
		}
	}
	return out
}

// isRetryable reports rate limit and transient server errors.
var isRetryable = retry.StatusIn(func(err error) (int, bool) {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}, 429, 500, 502, 503, 504)
