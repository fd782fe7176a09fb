/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package agenteval derives evaluation criteria for a task from language
// model conversations and uses them to quantify how well test cases perform.
//
// # Criteria Generation
//
// GenerateCriteria seeds a round-robin conversation between a critic and an
// optional sub-critic with the task's system message and parses the last
// message as a JSON list of criteria:
//
//	criteria, err := agenteval.GenerateCriteria(ctx, client, task,
//		agenteval.WithSubCritic(true),
//		agenteval.WithMaxRound(3),
//	)
//
// GenerateSummarizedCriteria repeats that conversation once per seed and has
// a summarizer merge the lists into one.
//
// # Quantification
//
// QuantifyCriteria sends the task, the criteria and a test case to the
// quantifier and returns its answer together with the caller's ground truth.
// QuantifyCriteriaMultipleSeeds repeats it once per seed and parses each
// answer into quantification.Quantification values.
//
// # Metrics
//
// Seed runs and parse failures are counted in the default Prometheus
// registry as agenteval_seed_runs_total and agenteval_parse_failures_total.
// Conversation lengths are observed in agenteval_transcript_messages.
package agenteval
