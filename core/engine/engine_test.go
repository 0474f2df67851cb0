package engine

import (
	"strings"
	"testing"

	"tech-verdict/core/knowledge"
	"tech-verdict/core/types"
	tverrors "tech-verdict/internal/errors"
)

var testConstraints = []types.Constraint{
	{Name: "budget", Value: types.StringValue("low"), Weight: 0.5, Category: types.CategoryBudget},
	{Name: "scalability", Value: types.StringValue("high"), Weight: 0.5, Category: types.CategoryScalability},
}

func TestCompareLambdaEC2(t *testing.T) {
	e := New(nil)
	results, err := e.Compare([]string{"Lambda", "EC2"}, testConstraints)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "AWS Lambda" || results[1].Name != "AWS EC2" {
		t.Errorf("unexpected order: %v", types.OptionNames(results))
	}

	for _, r := range results {
		if len(r.Tradeoffs) == 0 {
			t.Errorf("%s: expected trade-offs", r.Name)
		}
		if !strings.Contains(r.BestFor, "prioritize") {
			t.Errorf("%s: bestFor = %q", r.Name, r.BestFor)
		}
		if !strings.Contains(r.WorstFor, "Avoid") {
			t.Errorf("%s: worstFor = %q", r.Name, r.WorstFor)
		}
	}
}

func TestCompareScoresInRange(t *testing.T) {
	e := New(nil)
	inputs := []string{"PostgreSQL", "MongoDB", "DynamoDB", "Fargate", "Lambda"}
	results, err := e.Compare(inputs, testConstraints)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	for i, r := range results {
		tech, ok := e.Knowledge().Lookup(inputs[i])
		if !ok {
			t.Fatalf("%s: lookup failed", inputs[i])
		}
		if len(r.Scores) != len(tech.Attributes) {
			t.Errorf("%s: score keys %d != attribute keys %d", r.Name, len(r.Scores), len(tech.Attributes))
		}
		for k, v := range r.Scores {
			if v < 0 || v > 1 {
				t.Errorf("%s.%s = %v outside [0,1]", r.Name, k, v)
			}
		}
	}
}

func TestCompareUnknownTechnology(t *testing.T) {
	e := New(nil)
	_, err := e.Compare([]string{"Lambda", "UnknownTech"}, testConstraints)
	if err == nil {
		t.Fatal("expected error")
	}
	if !tverrors.IsType(err, tverrors.TypeUnknownTechnology) {
		t.Errorf("expected UNKNOWN_TECHNOLOGY, got %v", err)
	}
	if !strings.Contains(err.Error(), "UnknownTech") {
		t.Errorf("error should name the option: %v", err)
	}
}

func TestScore(t *testing.T) {
	tech := knowledge.TechOption{
		Name: "Test",
		Attributes: []knowledge.Attribute{
			{Key: "cost", Value: 0.8},
			{Key: "scalability", Value: 0.6},
			{Key: "team_size_friendly", Value: 0.5},
			{Key: "cold_start", Value: 0.4},
		},
	}
	constraints := []types.Constraint{
		{Name: "scale", Weight: 0.2, Category: types.CategoryScalability},
		{Name: "team", Weight: 0.4, Category: types.CategoryTeam},
		{Name: "startup", Weight: 0.4, Category: types.CategoryTeam},
	}

	scores := Score(tech, constraints)

	tests := []struct {
		attr string
		want float64
	}{
		// no constraint names a cost attribute
		{"cost", 0.8},
		// category match and name substring match both hit "scale"
		{"scalability", 0.6 * 0.2},
		// "team" is a substring; "startup" is not
		{"team_size_friendly", 0.5 * 0.4},
		{"cold_start", 0.4},
	}
	for _, tt := range tests {
		if got := scores[tt.attr]; got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("%s = %v, want %v", tt.attr, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	kb := knowledge.Default()

	tests := []struct {
		name  string
		best  string
		worst string
	}{
		// scalability and operational_overhead tie at 0.95; declaration order wins
		{"lambda", "Use if you prioritize scalability", "Avoid if customization is critical"},
		{"ec2", "Use if you prioritize cold start", "Avoid if operational overhead is critical"},
		{"postgresql", "Use if you prioritize cost", "Avoid if operational overhead is critical"},
	}
	for _, tt := range tests {
		tech, ok := kb.Lookup(tt.name)
		if !ok {
			t.Fatalf("%s missing", tt.name)
		}
		best, worst := Fit(tech)
		if best != tt.best {
			t.Errorf("%s best = %q, want %q", tt.name, best, tt.best)
		}
		if worst != tt.worst {
			t.Errorf("%s worst = %q, want %q", tt.name, worst, tt.worst)
		}
	}
}

func TestFitIgnoresConstraints(t *testing.T) {
	e := New(nil)
	heavy := []types.Constraint{{Name: "cold", Weight: 1, Category: types.CategoryOther}}
	results, err := e.Compare([]string{"ec2"}, heavy)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Scores["cold_start"] != 1.0 {
		t.Errorf("expected cold_start weighted by 1, got %v", results[0].Scores["cold_start"])
	}
	if results[0].BestFor != "Use if you prioritize cold start" {
		t.Errorf("fit should come from raw attributes, got %q", results[0].BestFor)
	}
}
