package orchestrator

import (
	"fmt"

	"tech-verdict/core/knowledge"
	"tech-verdict/core/steering"
	"tech-verdict/core/types"
)

// mockScores holds the canned scores keyed by display name
var mockScores = map[string]map[string]float64{
	"AWS Lambda":             {"cost": 0.9, "performance": 0.7, "scalability": 0.95, "complexity": 0.8, "overall": 0.85},
	"AWS EC2":                {"cost": 0.6, "performance": 0.9, "scalability": 0.8, "complexity": 0.4, "overall": 0.68},
	"AWS Fargate":            {"cost": 0.7, "performance": 0.85, "scalability": 0.9, "complexity": 0.7, "overall": 0.78},
	"Google Cloud Functions": {"cost": 0.85, "performance": 0.75, "scalability": 0.9, "complexity": 0.85, "overall": 0.84},
	"MongoDB":                {"cost": 0.7, "performance": 0.8, "scalability": 0.85, "complexity": 0.6, "overall": 0.74},
	"PostgreSQL":             {"cost": 0.9, "performance": 0.85, "scalability": 0.7, "complexity": 0.8, "overall": 0.81},
	"DynamoDB":               {"cost": 0.8, "performance": 0.9, "scalability": 0.95, "complexity": 0.7, "overall": 0.84},
}

var mockTradeoffs = map[string][]types.TradeOff{
	"AWS Lambda": {
		{Benefit: "Zero server management", Cost: "Cold start latency ~500ms", Confidence: types.ConfidenceHigh, DataSource: "AWS docs"},
		{Benefit: "Auto-scaling to zero cost", Cost: "Limited execution time (15min)", Confidence: types.ConfidenceHigh, DataSource: "AWS limits"},
	},
	"AWS EC2": {
		{Benefit: "Full control over environment", Cost: "Manual scaling and maintenance", Confidence: types.ConfidenceHigh, DataSource: "AWS docs"},
		{Benefit: "Predictable performance", Cost: "Always-on costs even when idle", Confidence: types.ConfidenceHigh, DataSource: "Pricing analysis"},
	},
}

// genericScore is used for names without canned scores
const genericScore = 0.7

// Fallback questions
const (
	FallbackBudgetQuestion = "What is your expected monthly budget range?"
	FallbackUsersQuestion  = "How many concurrent users do you expect?"
)

// Fallback builds the canned comparison for options. Names are kept as given;
// canned tables are matched by exact name first, then by the canonical name
// the knowledge base resolves.
func Fallback(kb *knowledge.Base, options []string) types.ComparisonResult {
	if kb == nil {
		kb = knowledge.Default()
	}
	result := types.ComparisonResult{
		Requirements: []types.Constraint{
			{Name: "budget", Value: types.StringValue("low"), Weight: 0.8, Category: types.CategoryBudget},
			{Name: "performance", Value: types.StringValue("high"), Weight: 0.9, Category: types.CategoryPerformance},
		},
		Options:             make([]types.OptionScore, 0, len(options)),
		ClarifyingQuestions: []string{FallbackBudgetQuestion, FallbackUsersQuestion},
	}

	for _, name := range options {
		result.Options = append(result.Options, types.OptionScore{
			Name:      name,
			Scores:    FallbackScores(kb, name),
			Tradeoffs: fallbackTradeoffs(kb, name),
			BestFor:   fmt.Sprintf("Use %s for standard applications", name),
			WorstFor:  fmt.Sprintf("Avoid %s for specialized use cases", name),
		})
	}

	switch len(options) {
	case 0:
		result.NextQuestion = steering.PromptNoOptions
	case 1:
		result.NextQuestion = fmt.Sprintf("Between %s and other options, which matters more - cost optimization or performance?", options[0])
	default:
		result.NextQuestion = fmt.Sprintf("Between %s and %s, which matters more - cost optimization or performance?", options[0], options[1])
	}
	return result
}

// FallbackScores returns a copy of the canned scores for one option
func FallbackScores(kb *knowledge.Base, name string) map[string]float64 {
	src, ok := mockScores[canonical(kb, name, func(n string) bool { _, ok := mockScores[n]; return ok })]
	if !ok {
		return map[string]float64{
			"cost":        genericScore,
			"performance": genericScore,
			"scalability": genericScore,
			"complexity":  genericScore,
			"overall":     genericScore,
		}
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func fallbackTradeoffs(kb *knowledge.Base, name string) []types.TradeOff {
	src, ok := mockTradeoffs[canonical(kb, name, func(n string) bool { _, ok := mockTradeoffs[n]; return ok })]
	if !ok {
		return []types.TradeOff{{
			Benefit:    fmt.Sprintf("%s provides good performance", name),
			Cost:       fmt.Sprintf("%s requires setup", name),
			Confidence: types.ConfidenceMedium,
			DataSource: "General analysis",
		}}
	}
	return append([]types.TradeOff(nil), src...)
}

// canonical returns name when known, otherwise the knowledge base's canonical name
func canonical(kb *knowledge.Base, name string, known func(string) bool) string {
	if known(name) || kb == nil {
		return name
	}
	if tech, ok := kb.Lookup(name); ok {
		return tech.Name
	}
	return name
}
