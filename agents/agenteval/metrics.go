/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"errors"

	"chainguard.dev/agenteval/agents/result"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	opGenerate  = "generate_criteria"
	opQuantify  = "quantify_criteria"
	opSummarize = "summarize_criteria"
)

var (
	// Seed runs by operation and outcome (success, error).
	seedRunCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenteval_seed_runs_total",
			Help: "Total number of repeated evaluation runs performed",
		},
		[]string{"operation", "outcome"},
	)

	parseFailureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenteval_parse_failures_total",
			Help: "Total number of model answers that could not be parsed",
		},
		[]string{"operation", "kind"},
	)

	transcriptMessages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "agenteval_transcript_messages",
			Help:    "Number of messages in criteria conversations, task message included",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)
)

func recordSeedRun(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	seedRunCounter.WithLabelValues(operation, outcome).Inc()
}

// recordParseFailure counts err when it is a *result.ParseError.
func recordParseFailure(operation string, err error) {
	var pe *result.ParseError
	if errors.As(err, &pe) {
		parseFailureCounter.WithLabelValues(operation, string(pe.Kind)).Inc()
	}
}
