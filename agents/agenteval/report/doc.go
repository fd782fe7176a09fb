/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package report renders criteria and quantification results for people.

# Statistics

Summarize folds the quantifications of several seed runs into one Stat per
criterion. Judgments are scored with Criterion.ToNumeric, so ordinal scales
such as "Excellent, Good, Poor" become 1, 0.5 and 0:

	runs, err := agenteval.QuantifyCriteriaMultipleSeeds(ctx, client, criteria, task, testCase, groundTruth)
	if err != nil {
		return err
	}
	stats := report.Summarize(criteria, runs)

# Output

Table renders statistics as a markdown table. A criterion whose mean falls
below the threshold is flagged and reported through the boolean result:

	table, below := report.Table(stats, 0.5)

CriteriaTree renders a criteria hierarchy, sub-criteria included, as a tree
of names, accepted values and descriptions.

All functions are pure and safe for concurrent use.
*/
package report
