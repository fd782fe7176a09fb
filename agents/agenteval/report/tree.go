/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"path"
	"strings"

	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/sdk/pathtree"
)

// CriteriaTree renders criteria as a tree. Each node shows the criterion
// name, its accepted values and its description; sub-criteria are nested
// under their parent.
func CriteriaTree(criteria []criterion.Criterion) string {
	tree := pathtree.New()
	tree.PrintOption = pathtree.KeyValueLabel
	addCriteria(tree, "/", criteria)
	return tree.String()
}

func addCriteria(tree *pathtree.Tree, parent string, criteria []criterion.Criterion) {
	for _, c := range criteria {
		p := path.Join(parent, segment(c.Name))

		values := make([]string, 0, len(c.AcceptedValues))
		for _, v := range c.AcceptedValues {
			values = append(values, v.String())
		}
		value := "[" + strings.Join(values, ", ") + "]"

		if err := tree.Add(p, value, c.Description); err != nil {
			// Repeated names share a node.
			_ = tree.Update(p, value, c.Description)
		}
		addCriteria(tree, p, c.SubCriteria)
	}
}

// segment keeps a criterion name from being split into several path elements.
func segment(name string) string {
	name = strings.ReplaceAll(name, "/", "∕")
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return name
}
