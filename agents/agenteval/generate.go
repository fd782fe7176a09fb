/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/agenteval/agents/groupchat"
	"chainguard.dev/agenteval/agents/result"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel/attribute"
)

// SummarizerSource is the message source of the summarizer's input.
const SummarizerSource = "summarized_criteria_user"

// GenerateCriteria runs a criteria conversation for task and parses the
// final message as a list of criteria.
//
// The critic speaks first, followed by the sub-critic when enabled. The
// conversation ends when a message mentions TerminationToken or when it holds
// the configured maximum number of messages.
func GenerateCriteria(ctx context.Context, client chat.Client, task Task, opts ...Option) ([]criterion.Criterion, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return generateCriteria(ctx, client, task, cfg)
}

func generateCriteria(ctx context.Context, client chat.Client, task Task, cfg Config) (criteria []criterion.Criterion, err error) {
	ctx, span := startSpan(ctx, "agenteval.generate_criteria",
		attribute.Int("agenteval.max_round", cfg.MaxRound),
		attribute.Bool("agenteval.subcritic", cfg.UseSubCritic),
	)
	defer func() { endSpan(span, err) }()

	critic := cfg.Personas.Critic
	critic.SystemMessage += "\n" + cfg.AdditionalInstructions

	configs := []chat.RoleConfig{critic}
	if cfg.UseSubCritic {
		configs = append(configs, cfg.Personas.SubCritic)
	}
	roles := make([]*chat.Role, 0, len(configs))
	for _, rc := range configs {
		role, err := chat.NewRole(client, rc)
		if err != nil {
			return nil, fmt.Errorf("creating role %q: %w", rc.Name, err)
		}
		roles = append(roles, role)
	}

	var gopts []groupchat.Option
	if cfg.Observer != nil {
		gopts = append(gopts, groupchat.WithObserver(cfg.Observer))
	}
	team, err := groupchat.New(roles, groupchat.Or(
		groupchat.TextMention(TerminationToken),
		groupchat.MaxMessages(cfg.MaxRound),
	), gopts...)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	transcript, err := team.Run(ctx, task.SystemMessage())
	if err != nil {
		return nil, fmt.Errorf("running criteria conversation: %w", err)
	}
	transcriptMessages.Observe(float64(transcript.Len()))

	last, ok := transcript.Last()
	if !ok {
		return nil, errors.New("criteria conversation produced no messages")
	}
	return parseCriteria(opGenerate, last.Content)
}

// GenerateSummarizedCriteria runs GenerateCriteria once per configured seed
// and asks the summarizer to merge the results into a single list.
func GenerateSummarizedCriteria(ctx context.Context, client chat.Client, task Task, opts ...Option) (criteria []criterion.Criterion, err error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	ctx, span := startSpan(ctx, "agenteval.generate_summarized_criteria",
		attribute.Int("agenteval.seeds", cfg.Seeds),
	)
	defer func() { endSpan(span, err) }()

	runs, err := RunSeeds(ctx, cfg.Seeds, func(ctx context.Context, _ int) ([]criterion.Criterion, error) {
		c, err := generateCriteria(ctx, client, task, cfg)
		recordSeedRun(opGenerate, err)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("generating criteria: %w", err)
	}

	var corpus strings.Builder
	for _, run := range runs {
		s, err := criterion.Serialize(run)
		if err != nil {
			return nil, err
		}
		corpus.WriteString(s)
		corpus.WriteString("\n")
	}

	summarizer, err := chat.NewRole(client, cfg.Personas.Summarizer)
	if err != nil {
		return nil, fmt.Errorf("creating summarizer: %w", err)
	}
	msg, err := summarizer.Respond(ctx, []chat.Message{{Source: SummarizerSource, Content: corpus.String()}})
	if err != nil {
		return nil, fmt.Errorf("summarizing criteria: %w", err)
	}

	criteria, err = parseCriteria(opSummarize, msg.Content)
	if err != nil {
		return nil, err
	}
	clog.FromContext(ctx).With("seeds", cfg.Seeds).
		With("criteria", len(criteria)).
		Info("Summarized criteria")
	return criteria, nil
}

// parseCriteria extracts the outermost JSON array from content and decodes it.
func parseCriteria(operation, content string) ([]criterion.Criterion, error) {
	text, err := result.Array(content)
	if err != nil {
		recordParseFailure(operation, err)
		return nil, fmt.Errorf("parsing criteria: %w", err)
	}
	criteria, err := criterion.Parse(text)
	if err != nil {
		recordParseFailure(operation, err)
		return nil, fmt.Errorf("parsing criteria: %w", err)
	}
	return criteria, nil
}
