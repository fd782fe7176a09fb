/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/agenteval/agents/quantification"
	"chainguard.dev/agenteval/agents/result"
	"go.opentelemetry.io/otel/attribute"
)

// QuantifierSource is the message source of quantification requests.
const QuantifierSource = "quantifier_user"

// QuantifyResult is the outcome of one quantification.
type QuantifyResult struct {
	// ActualSuccess is the ground truth supplied by the caller.
	ActualSuccess string `json:"actual_success"`

	// EstimatedPerformance is the quantifier's answer, a JSON object mapping
	// criterion names to assessed values.
	EstimatedPerformance string `json:"estimated_performance"`
}

// Quantifications parses EstimatedPerformance. A surrounding markdown code
// fence is ignored.
func (r *QuantifyResult) Quantifications() ([]quantification.Quantification, error) {
	return quantification.Parse(result.ExtractJSON(r.EstimatedPerformance))
}

// QuantifyCriteria asks the quantifier to judge testCase against criteria.
// The answer is returned unparsed next to groundTruth.
func QuantifyCriteria(ctx context.Context, client chat.Client, criteria []criterion.Criterion, task Task, testCase, groundTruth string, opts ...Option) (*QuantifyResult, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return quantifyCriteria(ctx, client, criteria, task, testCase, groundTruth, cfg)
}

func quantifyCriteria(ctx context.Context, client chat.Client, criteria []criterion.Criterion, task Task, testCase, groundTruth string, cfg Config) (res *QuantifyResult, err error) {
	ctx, span := startSpan(ctx, "agenteval.quantify_criteria",
		attribute.Int("agenteval.criteria", len(criteria)),
	)
	defer func() { endSpan(span, err) }()

	serialized, err := criterion.Serialize(criteria)
	if err != nil {
		return nil, err
	}
	content := task.SystemMessage() +
		"Evaluation dictionary: " + serialized +
		"actual test case to evaluate: " + testCase

	quantifier, err := chat.NewRole(client, cfg.Personas.Quantifier)
	if err != nil {
		return nil, fmt.Errorf("creating quantifier: %w", err)
	}
	msg, err := quantifier.Respond(ctx, []chat.Message{{Source: QuantifierSource, Content: content}})
	if err != nil {
		return nil, fmt.Errorf("quantifying criteria: %w", err)
	}
	return &QuantifyResult{
		ActualSuccess:        groundTruth,
		EstimatedPerformance: msg.Content,
	}, nil
}

// QuantifyCriteriaMultipleSeeds runs QuantifyCriteria once per configured
// seed and parses every answer. The result maps seed index to its
// quantifications. Any failed run or unparsable answer fails the whole call.
func QuantifyCriteriaMultipleSeeds(ctx context.Context, client chat.Client, criteria []criterion.Criterion, task Task, testCase, groundTruth string, opts ...Option) (map[int][]quantification.Quantification, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	runs, err := RunSeeds(ctx, cfg.Seeds, func(ctx context.Context, _ int) ([]quantification.Quantification, error) {
		qs, err := quantifySeed(ctx, client, criteria, task, testCase, groundTruth, cfg)
		recordSeedRun(opQuantify, err)
		return qs, err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int][]quantification.Quantification, len(runs))
	for i, qs := range runs {
		out[i] = qs
	}
	return out, nil
}

// QuantifyCriteriaSeedResults is QuantifyCriteriaMultipleSeeds without the
// all-or-nothing rule: every seed's outcome is reported individually.
func QuantifyCriteriaSeedResults(ctx context.Context, client chat.Client, criteria []criterion.Criterion, task Task, testCase, groundTruth string, opts ...Option) ([]SeedResult[[]quantification.Quantification], error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return CollectSeeds(ctx, cfg.Seeds, func(ctx context.Context, _ int) ([]quantification.Quantification, error) {
		qs, err := quantifySeed(ctx, client, criteria, task, testCase, groundTruth, cfg)
		recordSeedRun(opQuantify, err)
		return qs, err
	}), nil
}

func quantifySeed(ctx context.Context, client chat.Client, criteria []criterion.Criterion, task Task, testCase, groundTruth string, cfg Config) ([]quantification.Quantification, error) {
	res, err := quantifyCriteria(ctx, client, criteria, task, testCase, groundTruth, cfg)
	if err != nil {
		return nil, err
	}
	qs, err := res.Quantifications()
	if err != nil {
		recordParseFailure(opQuantify, err)
		return nil, fmt.Errorf("parsing quantification: %w", err)
	}
	return qs, nil
}
