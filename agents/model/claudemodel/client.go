/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudemodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/metrics"
	"chainguard.dev/agenteval/agents/model/retry"
)

// DefaultModel is used when WithModel is not given.
const DefaultModel = "claude-sonnet-4@20250514"

type client struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	retry       retry.Config
	metrics     *metrics.GenAI
}

var _ chat.Client = (*client)(nil)

// New wraps an Anthropic client as a chat.Client.
func New(c anthropic.Client, opts ...Option) (chat.Client, error) {
	cl := &client{
		client:      c,
		model:       DefaultModel,
		maxTokens:   8192,
		temperature: 0.1,
		retry:       retry.DefaultConfig(),
		metrics:     metrics.NewGenAI(metrics.MeterName),
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

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Messages:    toMessages(req.EndingWithUser()),
		Temperature: anthropic.Float(c.temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	message, err := retry.Do(ctx, c.retry, "claude_stream_message", isRetryable, func() (anthropic.Message, error) {
		stream := c.client.Messages.NewStreaming(ctx, params)
		defer stream.Close()
		var msg anthropic.Message
		for stream.Next() {
			if err := msg.Accumulate(stream.Current()); err != nil {
				return msg, fmt.Errorf("failed to accumulate event: %w", err)
			}
		}
		return msg, stream.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stream Claude response: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		c.metrics.RecordTokens(ctx, c.model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	content := textOf(message)
	clog.FromContext(ctx).With("model", c.model).
		With("stop_reason", string(message.StopReason)).
		With("response_length", len(content)).
		Debug("Claude completion finished")

	return &chat.Response{
		Content:      content,
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
	}, nil
}

func toMessages(turns []chat.Turn) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(t.Content)
		if t.Speaker == chat.Assistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}

// textOf joins the text blocks of a message; thinking and tool blocks are skipped.
func textOf(msg anthropic.Message) string {
	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "")
}

// isRetryable reports rate limit, overloaded and transient gateway errors.
var isRetryable = retry.StatusIn(func(err error) (int, bool) {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}, 429, 503, 504, 529)
