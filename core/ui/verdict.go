// Package ui - Comparison display
package ui

import (
	"fmt"
	"sort"
	"strings"

	"tech-verdict/core/types"
)

// DisplayComparison renders a comparison result for a terminal
func (w *Writer) DisplayComparison(result types.ComparisonResult) {
	w.Header("Technology Comparison")

	if len(result.Requirements) > 0 {
		w.SubHeader("Requirements")
		table := w.NewTable("Constraint", "Value", "Category", "Weight")
		for _, c := range result.Requirements {
			table.AddRow(c.Name, c.Value.String(), c.Category.String(), fmt.Sprintf("%.2f", c.Weight))
		}
		table.Render()
		w.Println("")
	} else {
		w.Warning("No constraints recognized")
		w.Println("")
	}

	for _, opt := range result.Options {
		w.displayOption(opt)
	}

	if result.NextQuestion != "" {
		w.SubHeader("Next question")
		w.Println("  %s", w.Color(Magenta, result.NextQuestion))
		w.Println("")
	}

	if len(result.ClarifyingQuestions) > 0 {
		w.SubHeader("To sharpen the verdict")
		for i, q := range result.ClarifyingQuestions {
			w.Println("  %d. %s", i+1, q)
		}
	}
}

func (w *Writer) displayOption(opt types.OptionScore) {
	w.SubHeader(opt.Name)

	keys := make([]string, 0, len(opt.Scores))
	for k := range opt.Scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := w.NewTable("Attribute", "Score", "")
	for _, k := range keys {
		table.AddRow(strings.ReplaceAll(k, "_", " "), fmt.Sprintf("%.2f", opt.Scores[k]), w.ScoreBar(opt.Scores[k]))
	}
	table.Render()

	if opt.BestFor != "" {
		w.Success("%s", opt.BestFor)
	}
	if opt.WorstFor != "" {
		w.Warning("%s", opt.WorstFor)
	}

	for _, t := range opt.Tradeoffs {
		w.Println("  • %s %s %s %s", t.Benefit, w.Color(Dim, "vs"), t.Cost, w.Color(Dim, "("+string(t.Confidence)+")"))
	}
	w.Println("")
}

// DisplayDecisionPath prints a pre-rendered decision path report
func (w *Writer) DisplayDecisionPath(report string) {
	if report == "" {
		return
	}
	w.Header("Decision Path")
	w.Println("%s", strings.TrimRight(report, "\n"))
}
