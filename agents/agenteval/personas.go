/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/agenteval/agents/promptbuilder"
)

// TerminationToken ends a criteria conversation early when a participant says it.
const TerminationToken = "TERMINATE"

// Role names used by DefaultPersonas.
const (
	CriticName     = "critic"
	SubCriticName  = "subcritic"
	SummarizerName = "critic_summarizer"
	QuantifierName = "quantifier"
)

// Personas configures the four roles taking part in an evaluation.
type Personas struct {
	// Critic proposes criteria for a task.
	Critic chat.RoleConfig
	// SubCritic refines the critic's criteria with sub-criteria.
	SubCritic chat.RoleConfig
	// Summarizer merges the criteria of several runs into one list.
	Summarizer chat.RoleConfig
	// Quantifier judges a test case against a list of criteria.
	Quantifier chat.RoleConfig
}

var (
	exampleCriterion = criterion.Criterion{
		Name:        "accuracy",
		Description: "How correct the final answer is.",
		AcceptedValues: []criterion.Value{
			criterion.String("Excellent"),
			criterion.String("Good"),
			criterion.String("Average"),
			criterion.String("Poor"),
		},
	}

	criticPrompt = promptbuilder.MustNewPrompt(`You are a helpful assistant. You suggest criteria for evaluating different tasks. They should be distinguishable, quantifiable and not redundant.
Convert the evaluation criteria into a JSON list where each item is one criterion shaped like this example:
{{example}}
Make sure "accepted_values" are in DESCENDING order of preference and list acceptable inputs that are fine-grained and preferably multi-graded levels. "description" describes the criterion.
Output just the criteria list you have created, no code.`)

	subCriticPrompt = promptbuilder.MustNewPrompt(`You are a helpful assistant to the critic. For each criterion the critic proposed, suggest sub-criteria when they make the evaluation more precise. Sub-criteria should be distinguishable, quantifiable and related to the theme of their parent criterion.
Return the critic's complete list with every criterion kept as it was, and put the sub-criteria of each criterion in its "sub_criteria" list. A sub-criterion has the same shape as a criterion:
{{example}}
"accepted_values" list fine-grained, preferably multi-graded levels in DESCENDING order of preference.
Make sure to return a valid JSON list and no code. Say {{token}} after the list once the criteria need no further refinement.`)

	summarizerPrompt = promptbuilder.MustNewPrompt(`You are a helpful assistant. You receive several JSON lists of evaluation criteria that were proposed independently for the same task.
Merge them into a single list. Criteria measuring the same thing become one criterion; redundant criteria are dropped. Each criterion in your answer has this shape:
{{example}}
Keep "accepted_values" in DESCENDING order of preference.
Output just the merged JSON list, no code.`)

	quantifierPrompt = promptbuilder.MustNewPrompt(`You are a helpful assistant. You quantify the output of different tasks based on the given criteria.
The criteria are given as a JSON list where each element is a distinct criterion shaped like this example:
{{example}}
You are going to quantify each of the criteria for a given task based on the task description.
Return a JSON object whose keys are the criterion names and whose values are the assessed performance, each taken from the accepted values of its criterion, for example:
{{answer}}
Return only the JSON object, no code.`)
)

// DefaultPersonas returns the built-in role configurations. Each call returns
// fresh values that callers may modify.
func DefaultPersonas() Personas {
	return Personas{
		Critic: chat.RoleConfig{
			Name:          CriticName,
			Description:   "An AI agent for creating list criteria for evaluating the utility of a given task.",
			SystemMessage: build(criticPrompt.MustBindJSON("example", exampleCriterion)),
		},
		SubCritic: chat.RoleConfig{
			Name:        SubCriticName,
			Description: "An AI agent for creating sub-criteria from the criteria proposed by the critic.",
			SystemMessage: build(subCriticPrompt.
				MustBindJSON("example", exampleCriterion).
				MustBindStringLiteral("token", TerminationToken)),
		},
		Summarizer: chat.RoleConfig{
			Name:          SummarizerName,
			Description:   "An AI agent for merging the criteria of several independent runs.",
			SystemMessage: build(summarizerPrompt.MustBindJSON("example", exampleCriterion)),
		},
		Quantifier: chat.RoleConfig{
			Name:        QuantifierName,
			Description: "An AI agent for quantifying the performance of a system using the provided criteria.",
			SystemMessage: build(quantifierPrompt.
				MustBindJSON("example", exampleCriterion).
				MustBindJSON("answer", map[string]string{"accuracy": "Good"})),
		},
	}
}

// build renders a fully bound template; the templates above bind every placeholder.
func build(p *promptbuilder.Prompt) string {
	s, err := p.Build()
	if err != nil {
		panic(err)
	}
	return s
}
