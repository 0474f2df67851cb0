package tradeoff

import (
	"fmt"
	"testing"

	"tech-verdict/core/engine"
	"tech-verdict/core/types"
)

func allCategories() []types.Constraint {
	return []types.Constraint{
		{Name: "budget", Weight: 0.2, Category: types.CategoryBudget},
		{Name: "team", Weight: 0.2, Category: types.CategoryTeam},
		{Name: "scale", Weight: 0.2, Category: types.CategoryScalability},
		{Name: "fast", Weight: 0.2, Category: types.CategoryPerformance},
		{Name: "ops", Weight: 0.2, Category: types.CategoryOperational},
	}
}

func TestAnalyzeCapsAndDedupes(t *testing.T) {
	options, err := engine.New(nil).Compare([]string{"Lambda", "EC2", "Fargate", "PostgreSQL", "MongoDB", "DynamoDB"}, allCategories())
	if err != nil {
		t.Fatal(err)
	}

	analyzed := New(nil).Analyze(options, allCategories())
	if len(analyzed) != len(options) {
		t.Fatalf("expected %d options, got %d", len(options), len(analyzed))
	}

	for i, option := range analyzed {
		if option.Name != options[i].Name {
			t.Errorf("order changed at %d: %s", i, option.Name)
		}
		if len(option.Tradeoffs) > MaxTradeoffs {
			t.Errorf("%s: %d trade-offs exceeds cap", option.Name, len(option.Tradeoffs))
		}
		seen := make(map[string]bool)
		for _, to := range option.Tradeoffs {
			k := to.Benefit + "|" + to.Cost
			if seen[k] {
				t.Errorf("%s: duplicate trade-off %q", option.Name, k)
			}
			seen[k] = true
		}
		// built-in trade-offs come first
		for j, orig := range options[i].Tradeoffs {
			if option.Tradeoffs[j] != orig {
				t.Errorf("%s: trade-off %d reordered", option.Name, j)
			}
		}
	}
}

func TestAnalyzeAddsConstraintTradeoffs(t *testing.T) {
	options, err := engine.New(nil).Compare([]string{"Lambda"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	constraints := []types.Constraint{{Name: "budget", Weight: 1, Category: types.CategoryBudget}}

	analyzed := New(nil).Analyze(options, constraints)

	got := analyzed[0].Tradeoffs
	if len(got) != 4 {
		t.Fatalf("expected 4 trade-offs, got %d", len(got))
	}
	if got[3].Benefit != "No upfront infrastructure costs" {
		t.Errorf("unexpected appended trade-off %q", got[3].Benefit)
	}
	if len(options[0].Tradeoffs) != 3 {
		t.Error("input option must not be modified")
	}
}

func TestAnalyzeUnknownNameKeepsTradeoffs(t *testing.T) {
	options := []types.OptionScore{{
		Name:      "Custom",
		Tradeoffs: []types.TradeOff{{Benefit: "a", Cost: "b", Confidence: types.ConfidenceLow}},
	}}
	analyzed := New(nil).Analyze(options, allCategories())
	if len(analyzed[0].Tradeoffs) != 1 {
		t.Errorf("expected 1 trade-off, got %d", len(analyzed[0].Tradeoffs))
	}
}

func TestDedupe(t *testing.T) {
	mk := func(b, c string, conf types.Confidence) types.TradeOff {
		return types.TradeOff{Benefit: b, Cost: c, Confidence: conf}
	}

	tests := []struct {
		name  string
		in    []types.TradeOff
		limit int
		want  int
	}{
		{"empty", nil, 5, 0},
		{"keeps first", []types.TradeOff{mk("a", "b", "high"), mk("a", "b", "low")}, 5, 1},
		{"same benefit different cost", []types.TradeOff{mk("a", "b", "high"), mk("a", "c", "high")}, 5, 2},
		{"concatenation is not the key", []types.TradeOff{mk("ab", "c", "high"), mk("a", "bc", "high")}, 5, 2},
		{"truncates", []types.TradeOff{mk("1", "x", "high"), mk("2", "x", "high"), mk("3", "x", "high")}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.in, tt.limit)
			if len(got) != tt.want {
				t.Fatalf("got %d, want %d", len(got), tt.want)
			}
			if tt.name == "keeps first" && got[0].Confidence != types.ConfidenceHigh {
				t.Error("expected first occurrence to win")
			}
		})
	}
}

func TestDedupeLargeInput(t *testing.T) {
	var list []types.TradeOff
	for i := 0; i < 20; i++ {
		list = append(list, types.TradeOff{Benefit: fmt.Sprintf("b%d", i%3), Cost: "c"})
	}
	got := Dedupe(list, MaxTradeoffs)
	if len(got) != 3 {
		t.Errorf("expected 3 unique trade-offs, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	options := []types.OptionScore{
		{Name: "A", Tradeoffs: []types.TradeOff{{Benefit: "fast", Cost: "pricey", Confidence: types.ConfidenceHigh}}},
		{Name: "B"},
	}
	got := Summarize(options)
	want := "A:\n  • fast vs pricey (high)\n\nB:"
	if got != want {
		t.Errorf("Summarize =\n%q\nwant\n%q", got, want)
	}
	if Summarize(nil) != "" {
		t.Error("expected empty summary for no options")
	}
}
