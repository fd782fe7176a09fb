/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Command agenteval generates evaluation criteria for a task and quantifies
// test cases against them.
//
// Usage:
//
//	agenteval generate   # criteria for TASK_FILE
//	agenteval quantify   # judge TEST_CASE_FILE against CRITERIA_FILE
//	agenteval schema     # JSON schema of a criteria document
//
// All settings come from the environment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	_ "github.com/chainguard-dev/clog/gcp/init"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sethvargo/go-envconfig"

	"chainguard.dev/agenteval/agents/model"
)

type config struct {
	Model           string `env:"MODEL,default=claude-sonnet-4@20250514"`
	ProjectID       string `env:"GOOGLE_CLOUD_PROJECT"`
	Region          string `env:"REGION,default=us-east5"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL"`

	TaskFile               string `env:"TASK_FILE"`
	CriteriaFile           string `env:"CRITERIA_FILE"`
	TestCaseFile           string `env:"TEST_CASE_FILE"`
	GroundTruth            string `env:"GROUND_TRUTH"`
	AdditionalInstructions string `env:"ADDITIONAL_INSTRUCTIONS"`

	MaxRound     int     `env:"MAX_ROUND,default=2"`
	UseSubCritic bool    `env:"USE_SUBCRITIC,default=false"`
	Seeds        int     `env:"SEEDS,default=1"`
	Threshold    float64 `env:"THRESHOLD,default=0"`

	// Transcript echoes criteria conversations to stderr.
	Transcript bool `env:"TRANSCRIPT,default=false"`

	// Output receives the JSON result; stdout when empty.
	Output string `env:"OUTPUT"`

	// MetricsFile receives the Prometheus registry in text format on exit.
	MetricsFile string `env:"METRICS_FILE"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: agenteval <generate|quantify|schema>")
		os.Exit(2)
	}

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	a := &app{cfg: cfg, stdout: os.Stdout, stderr: os.Stderr}
	if os.Args[1] != "schema" {
		client, err := model.New(ctx, model.Config{
			Model:           cfg.Model,
			ProjectID:       cfg.ProjectID,
			Region:          cfg.Region,
			AnthropicAPIKey: cfg.AnthropicAPIKey,
			GoogleAPIKey:    cfg.GoogleAPIKey,
			OpenAIAPIKey:    cfg.OpenAIAPIKey,
			OpenAIBaseURL:   cfg.OpenAIBaseURL,
		})
		if err != nil {
			clog.FatalContextf(ctx, "creating model client: %v", err)
		}
		a.client = client
		clog.InfoContextf(ctx, "Using model %s", cfg.Model)
	}

	if err := a.run(ctx, os.Args[1]); err != nil {
		clog.FatalContextf(ctx, "%s: %v", os.Args[1], err)
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			clog.FatalContextf(ctx, "writing metrics: %v", err)
		}
	}
}
