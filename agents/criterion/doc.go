/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package criterion models evaluation criteria produced by a critic agent.
//
// A Criterion names one dimension of task quality, describes it, and lists the
// judgments a quantifier may give for it ordered from best to worst. Criteria
// may nest through SubCriteria.
//
// # Wire Format
//
// Criteria travel as a JSON array:
//
//	[
//	  {
//	    "name": "accuracy",
//	    "description": "Is the answer correct?",
//	    "accepted_values": ["Excellent", "Good", "Poor"],
//	    "sub_criteria": []
//	  }
//	]
//
// Parse requires name, description and accepted_values on every element and
// reports violations as *result.ParseError. Serialize always emits all four keys.
//
// # Scoring
//
// Judgments are scalars (see Value). ToNumeric turns an ordinal judgment into a
// weight between 1 and 0 following the order of AcceptedValues, so judgments
// from different runs can be averaged:
//
//	c := criterion.Criterion{AcceptedValues: []criterion.Value{
//		criterion.String("Excellent"), criterion.String("Good"), criterion.String("Poor"),
//	}}
//	c.ToNumeric(criterion.String("Good")) // Float(0.5)
package criterion
