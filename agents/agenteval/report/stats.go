/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"math"
	"slices"

	"chainguard.dev/agenteval/agents/criterion"
	"chainguard.dev/agenteval/agents/quantification"
)

// Stat aggregates the judgments of one criterion across seed runs.
type Stat struct {
	// Name of the criterion.
	Name string

	// Samples is the number of scored judgments.
	Samples int

	// Missing is the number of runs that did not judge the criterion.
	Missing int

	// Unscored counts judgments that have no numeric score, such as text
	// judgments of a criterion with numeric accepted values.
	Unscored int

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64

	// Counts tallies the raw judgments by their text.
	Counts map[string]int

	// Known reports whether the criterion was part of the evaluated list.
	Known bool
}

// Summarize computes one Stat per criterion from the runs of a multi-seed
// quantification. Criteria keep their order. Names judged by the quantifier
// but absent from criteria follow in order of first appearance, scored only
// when their judgment is numeric.
func Summarize(criteria []criterion.Criterion, runs map[int][]quantification.Quantification) []Stat {
	seeds := make([]int, 0, len(runs))
	for seed := range runs {
		seeds = append(seeds, seed)
	}
	slices.Sort(seeds)

	byName := make(map[string]*accumulator, len(criteria))
	var order []string
	for _, c := range criteria {
		if _, dup := byName[c.Name]; dup {
			continue
		}
		byName[c.Name] = &accumulator{criterion: c, known: true}
		order = append(order, c.Name)
	}

	for _, seed := range seeds {
		for _, q := range runs[seed] {
			if _, ok := byName[q.Name]; !ok {
				byName[q.Name] = &accumulator{criterion: criterion.Criterion{Name: q.Name}}
				order = append(order, q.Name)
			}
		}
	}

	for _, seed := range seeds {
		judged := quantification.Lookup(runs[seed])
		for _, name := range order {
			acc := byName[name]
			v, ok := judged[name]
			if !ok {
				acc.missing++
				continue
			}
			acc.add(v)
		}
	}

	out := make([]Stat, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name].stat())
	}
	return out
}

type accumulator struct {
	criterion criterion.Criterion
	known     bool
	scores    []float64
	missing   int
	unscored  int
	counts    map[string]int
}

func (a *accumulator) add(v criterion.Value) {
	if a.counts == nil {
		a.counts = make(map[string]int)
	}
	a.counts[v.String()]++

	f, ok := a.criterion.ToNumeric(v).Float64()
	if !ok {
		a.unscored++
		return
	}
	a.scores = append(a.scores, f)
}

func (a *accumulator) stat() Stat {
	s := Stat{
		Name:     a.criterion.Name,
		Samples:  len(a.scores),
		Missing:  a.missing,
		Unscored: a.unscored,
		Counts:   a.counts,
		Known:    a.known,
	}
	if len(a.scores) == 0 {
		return s
	}

	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, f := range a.scores {
		sum += f
		s.Min = min(s.Min, f)
		s.Max = max(s.Max, f)
	}
	s.Mean = sum / float64(len(a.scores))

	var sq float64
	for _, f := range a.scores {
		sq += (f - s.Mean) * (f - s.Mean)
	}
	s.StdDev = math.Sqrt(sq / float64(len(a.scores)))
	return s
}
