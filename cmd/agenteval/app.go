/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/agenteval/agents/agenteval"
	"chainguard.dev/agenteval/agents/agenteval/report"
	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/agenteval/agents/groupchat"
	"chainguard.dev/agenteval/agents/schema"
)

type app struct {
	cfg    config
	client chat.Client
	stdout io.Writer
	stderr io.Writer
}

func (a *app) run(ctx context.Context, command string) error {
	switch command {
	case "generate":
		return a.generate(ctx)
	case "quantify":
		return a.quantify(ctx)
	case "schema":
		return a.schema()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) options() []agenteval.Option {
	observer := groupchat.LogObserver()
	if a.cfg.Transcript {
		observer = groupchat.Observers(observer, groupchat.ConsoleObserver(a.stderr))
	}
	return []agenteval.Option{
		agenteval.WithAdditionalInstructions(a.cfg.AdditionalInstructions),
		agenteval.WithMaxRound(a.cfg.MaxRound),
		agenteval.WithSubCritic(a.cfg.UseSubCritic),
		agenteval.WithSeeds(a.cfg.Seeds),
		agenteval.WithObserver(observer),
	}
}

func (a *app) generate(ctx context.Context) error {
	task, err := a.task()
	if err != nil {
		return err
	}

	var criteria []criterion.Criterion
	if a.cfg.Seeds > 1 {
		criteria, err = agenteval.GenerateSummarizedCriteria(ctx, a.client, task, a.options()...)
	} else {
		criteria, err = agenteval.GenerateCriteria(ctx, a.client, task, a.options()...)
	}
	if err != nil {
		return err
	}
	if err := criterion.Validate(criteria); err != nil {
		clog.FromContext(ctx).Warnf("Generated criteria have problems: %v", err)
	}

	fmt.Fprint(a.stderr, report.CriteriaTree(criteria))

	out, err := criterion.Serialize(criteria)
	if err != nil {
		return err
	}
	return a.write(out + "\n")
}

func (a *app) quantify(ctx context.Context) error {
	task, err := a.task()
	if err != nil {
		return err
	}
	if a.cfg.CriteriaFile == "" {
		return errors.New("CRITERIA_FILE is required")
	}
	if a.cfg.TestCaseFile == "" {
		return errors.New("TEST_CASE_FILE is required")
	}

	raw, err := os.ReadFile(a.cfg.CriteriaFile)
	if err != nil {
		return fmt.Errorf("reading criteria: %w", err)
	}
	criteria, err := criterion.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("reading criteria: %w", err)
	}
	testCase, err := os.ReadFile(a.cfg.TestCaseFile)
	if err != nil {
		return fmt.Errorf("reading test case: %w", err)
	}

	runs, err := agenteval.QuantifyCriteriaMultipleSeeds(ctx, a.client, criteria, task,
		string(testCase), a.cfg.GroundTruth, a.options()...)
	if err != nil {
		return err
	}

	table, below := report.Table(report.Summarize(criteria, runs), a.cfg.Threshold)
	fmt.Fprint(a.stderr, table)
	if below {
		clog.FromContext(ctx).With("threshold", a.cfg.Threshold).
			Warn("Some criteria scored below the threshold")
	}

	b, err := json.MarshalIndent(map[string]any{
		"actual_success": a.cfg.GroundTruth,
		"runs":           runs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding quantifications: %w", err)
	}
	return a.write(string(b) + "\n")
}

func (a *app) schema() error {
	out, err := schema.Marshal(criterion.Schema())
	if err != nil {
		return err
	}
	return a.write(out + "\n")
}

func (a *app) task() (*agenteval.BasicTask, error) {
	if a.cfg.TaskFile == "" {
		return nil, errors.New("TASK_FILE is required")
	}
	data, err := os.ReadFile(a.cfg.TaskFile)
	if err != nil {
		return nil, fmt.Errorf("reading task: %w", err)
	}
	return agenteval.ParseTask(data)
}

func (a *app) write(s string) error {
	if a.cfg.Output == "" {
		_, err := io.WriteString(a.stdout, s)
		return err
	}
	return os.WriteFile(a.cfg.Output, []byte(s), 0o644)
}
