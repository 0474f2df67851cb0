package ui

import (
	"bytes"
	"strings"
	"testing"

	"tech-verdict/core/types"
)

func TestTableAlignsWideRunes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Name", "Note")
	table.AddRow("💰", "cost")
	table.AddRow("abcd", "x")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	// the emoji occupies two cells, so both separators line up
	if strings.Index(lines[2], "│") == -1 || visibleWidth(lines[2][:strings.Index(lines[2], "│")]) != visibleWidth(lines[3][:strings.Index(lines[3], "│")]) {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestVisibleWidthIgnoresColor(t *testing.T) {
	w := NewWriter(nil, false)
	if got := visibleWidth(w.Color(Green, "abc")); got != 3 {
		t.Errorf("visibleWidth = %d, want 3", got)
	}
}

func TestScoreBar(t *testing.T) {
	w := NewWriter(nil, true)

	tests := []struct {
		score  float64
		filled int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.7, 20},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := w.ScoreBar(tt.score)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("ScoreBar(%v) filled %d cells, want %d", tt.score, got, tt.filled)
		}
	}
}

func TestDisplayComparison(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.DisplayComparison(types.ComparisonResult{
		Requirements: []types.Constraint{
			{Name: "budget", Value: types.StringValue("low"), Weight: 1, Category: types.CategoryBudget},
		},
		Options: []types.OptionScore{{
			Name:      "AWS Lambda",
			Scores:    map[string]float64{"cost": 0.9, "learning_curve": 0.7},
			Tradeoffs: []types.TradeOff{{Benefit: "Pay-per-use", Cost: "Cold starts", Confidence: types.ConfidenceHigh}},
			BestFor:   "Use if you prioritize cost",
			WorstFor:  "Avoid if customization is critical",
		}},
		NextQuestion:        "How many engineers?",
		ClarifyingQuestions: []string{"What is your budget?"},
	})

	out := buf.String()
	for _, want := range []string{
		"Technology Comparison",
		"▸ AWS Lambda",
		"learning curve",
		"Pay-per-use vs Cold starts (high)",
		"✓ Use if you prioritize cost",
		"How many engineers?",
		"1. What is your budget?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("noColor writer emitted ANSI codes")
	}
}
