package parser

import (
	"encoding/json"
	"math"
	"testing"

	"tech-verdict/core/types"
)

func sumWeights(cs []types.Constraint) float64 {
	var total float64
	for _, c := range cs {
		total += c.Weight
	}
	return total
}

func TestParseDistinctKeywords(t *testing.T) {
	result := Parse("budget performance scalability")
	if len(result.Constraints) != 3 {
		t.Fatalf("expected 3 constraints, got %d", len(result.Constraints))
	}
	if math.Abs(sumWeights(result.Constraints)-1) > 1e-9 {
		t.Errorf("weights should sum to 1, got %v", sumWeights(result.Constraints))
	}
	wantOrder := []string{"budget", "performance", "scalability"}
	for i, name := range wantOrder {
		if result.Constraints[i].Name != name {
			t.Errorf("constraint %d: got %q, want %q", i, result.Constraints[i].Name, name)
		}
	}
}

func TestParseWeightsSumToOne(t *testing.T) {
	inputs := []string{
		"budget",
		"low cost, fast latency; team of 3",
		"5 person startup, low budget, variable load",
		"ops maintenance operations growth scalable cheap expensive",
		"BUDGET Performance",
	}
	for _, in := range inputs {
		result := Parse(in)
		if len(result.Constraints) == 0 {
			t.Errorf("%q: expected constraints", in)
			continue
		}
		if math.Abs(sumWeights(result.Constraints)-1) > 1e-9 {
			t.Errorf("%q: weights sum to %v", in, sumWeights(result.Constraints))
		}
		for _, c := range result.Constraints {
			if c.Weight < 0 || c.Weight > 1 {
				t.Errorf("%q: weight %v outside [0,1]", in, c.Weight)
			}
		}
	}
}

func TestParseValues(t *testing.T) {
	result := Parse("budget 500, performance latency, team")

	if len(result.Constraints) != 4 {
		t.Fatalf("expected 4 constraints, got %d", len(result.Constraints))
	}

	budget := result.Constraints[0]
	n, ok := budget.Value.Number()
	if !ok || n != 500 {
		t.Errorf("expected numeric 500, got %v", budget.Value)
	}

	// next token is a keyword
	if got := result.Constraints[1].Value.String(); got != "high" {
		t.Errorf("performance value = %q, want high", got)
	}
	if got := result.Constraints[2].Value.String(); got != "high" {
		t.Errorf("latency value = %q, want high", got)
	}
	// last token
	if got := result.Constraints[3].Value.String(); got != "high" {
		t.Errorf("team value = %q, want high", got)
	}
}

func TestParseValueFromFollowingWord(t *testing.T) {
	result := Parse("latency critical, team small")
	if len(result.Constraints) != 2 {
		t.Fatalf("expected 2 constraints, got %d", len(result.Constraints))
	}
	if got := result.Constraints[0].Value.String(); got != "critical" {
		t.Errorf("latency value = %q, want critical", got)
	}
	if got := result.Constraints[1].Value.String(); got != "small" {
		t.Errorf("team value = %q, want small", got)
	}
}

func TestParseNonFiniteNumbersStayText(t *testing.T) {
	for _, in := range []string{"budget nan, performance", "cost inf performance", "budget -infinity"} {
		result := Parse(in)
		if len(result.Constraints) == 0 {
			t.Fatalf("%q: expected constraints", in)
		}
		v := result.Constraints[0].Value
		if v.IsNumber() {
			t.Errorf("%q: value %q should be text", in, v)
		}
		if _, err := json.Marshal(result); err != nil {
			t.Errorf("%q: result must encode as JSON: %v", in, err)
		}
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	result := Parse("budget low budget high")
	if len(result.Constraints) != 1 {
		t.Fatalf("expected 1 constraint, got %d", len(result.Constraints))
	}
	if result.Constraints[0].Value.String() != "low" {
		t.Errorf("expected first value 'low', got %q", result.Constraints[0].Value)
	}
	if result.Constraints[0].Weight != 1 {
		t.Errorf("single constraint should normalize to 1, got %v", result.Constraints[0].Weight)
	}
}

func TestParseEmpty(t *testing.T) {
	result := Parse("hello world")

	if len(result.Constraints) != 0 {
		t.Fatalf("expected no constraints, got %d", len(result.Constraints))
	}
	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %v", result.Confidence)
	}
	want := []string{PromptMoreConstraints, PromptTeamSize, PromptBudget}
	if len(result.Clarifications) != len(want) {
		t.Fatalf("expected %d clarifications, got %v", len(want), result.Clarifications)
	}
	for i := range want {
		if result.Clarifications[i] != want[i] {
			t.Errorf("clarification %d = %q, want %q", i, result.Clarifications[i], want[i])
		}
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"budget", 0.2},
		{"budget fast", 0.4},
		{"budget fast scale team ops", 1},
		{"budget fast scale team ops growth cheap", 1},
	}
	for _, tt := range tests {
		got := Parse(tt.input).Confidence
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Parse(%q).Confidence = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseClarificationsOnlyTeamAndBudget(t *testing.T) {
	result := Parse("team budget")
	if len(result.Clarifications) != 0 {
		t.Errorf("expected no clarifications, got %v", result.Clarifications)
	}

	result = Parse("fast scale")
	if len(result.Clarifications) != 2 {
		t.Errorf("expected team and budget prompts, got %v", result.Clarifications)
	}
}

func TestParseStartupScenario(t *testing.T) {
	result := Parse("5 person startup, low budget, variable load")

	if !types.HasCategory(result.Constraints, types.CategoryTeam) {
		t.Error("expected a team constraint")
	}
	if !types.HasCategory(result.Constraints, types.CategoryBudget) {
		t.Error("expected a budget constraint")
	}
	if result.RawInput != "5 person startup, low budget, variable load" {
		t.Errorf("raw input not preserved: %q", result.RawInput)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{" Low,Budget;; fast\tOPS ", []string{"low", "budget", "fast", "ops"}},
		{"budget\u00a0performance", []string{"budget", "performance"}},
		{"cost\u2003fast\u3000team", []string{"cost", "fast", "team"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q) token %d = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}

	if n := len(Parse("budget\u00a0performance").Constraints); n != 2 {
		t.Errorf("no-break space: expected 2 constraints, got %d", n)
	}
}

func TestKeywordsSorted(t *testing.T) {
	kw := Keywords()
	if len(kw) != len(keywords) {
		t.Fatalf("expected %d keywords, got %d", len(keywords), len(kw))
	}
	for i := 1; i < len(kw); i++ {
		if kw[i-1] >= kw[i] {
			t.Errorf("keywords not sorted at %d: %q >= %q", i, kw[i-1], kw[i])
		}
	}
}
