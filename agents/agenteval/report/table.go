/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Table renders stats as a markdown table, one row per criterion. Rows whose
// mean is below threshold are flagged with ❌ and make the boolean result
// true. A threshold of zero or less disables the check.
func Table(stats []Stat, threshold float64) (string, bool) {
	if len(stats) == 0 {
		return "", false
	}

	var buf bytes.Buffer
	table := newTable([]string{"Criterion", "Samples", "Missing", "Mean", "Std Dev", "Min", "Max", "Judgments"}, &buf)

	below := false
	for _, s := range stats {
		name := s.Name
		if !s.Known {
			name += " (unlisted)"
		}

		row := []string{name, strconv.Itoa(s.Samples), strconv.Itoa(s.Missing)}
		if s.Samples == 0 {
			row = append(row, "-", "-", "-", "-")
		} else {
			mean := fmt.Sprintf("%.2f", s.Mean)
			if threshold > 0 && s.Mean < threshold {
				below = true
				mean = "❌ " + mean
			}
			row = append(row, mean,
				fmt.Sprintf("%.2f", s.StdDev),
				fmt.Sprintf("%.2f", s.Min),
				fmt.Sprintf("%.2f", s.Max))
		}
		row = append(row, judgments(s.Counts))
		_ = table.Append(row)
	}
	_ = table.Render()

	return buf.String(), below
}

// judgments formats counts most frequent first, ties by text.
func judgments(counts map[string]int) string {
	type tally struct {
		text string
		n    int
	}
	tallies := make([]tally, 0, len(counts))
	for text, n := range counts {
		tallies = append(tallies, tally{text: text, n: n})
	}
	slices.SortFunc(tallies, func(a, b tally) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}
		return cmp.Compare(a.text, b.text)
	})

	parts := make([]string, 0, len(tallies))
	for _, t := range tallies {
		parts = append(parts, fmt.Sprintf("%s ×%d", t.text, t.n))
	}
	return strings.Join(parts, ", ")
}

func newTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 120,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
