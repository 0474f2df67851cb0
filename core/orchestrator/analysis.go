package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"tech-verdict/core/steering"
	"tech-verdict/core/types"
)

// analysisInput is the constraint text used for single-option analysis
const analysisInput = "mock"

// Gain is a benefit with its estimated impact
type Gain struct {
	Benefit     string `json:"benefit" yaml:"benefit"`
	Impact      int    `json:"impact" yaml:"impact"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Loss is a cost with its estimated severity
type Loss struct {
	TradeOff    string `json:"trade_off" yaml:"trade_off"`
	Severity    int    `json:"severity" yaml:"severity"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// OptionAnalysis is the per-option fit report
type OptionAnalysis struct {
	Option         string `json:"option" yaml:"option"`
	FitScore       int64  `json:"fit_score" yaml:"fit_score"`
	FitLevel       string `json:"fit_level" yaml:"fit_level"`
	Gains          []Gain `json:"gains" yaml:"gains"`
	Losses         []Loss `json:"losses" yaml:"losses"`
	WhenWins       string `json:"when_wins" yaml:"when_wins"`
	WhenLoses      string `json:"when_loses" yaml:"when_loses"`
	Recommendation string `json:"recommendation_for_your_case" yaml:"recommendation_for_your_case"`
}

const (
	gainImpact   = 90
	lossSeverity = 45

	excellentFit = 0.8
)

// AnalyzeOption reports gains, losses and fit for a single option
func (o *Orchestrator) AnalyzeOption(option string) OptionAnalysis {
	comparison := o.Orchestrate(analysisInput, []string{option})
	data := comparison.Options[0]

	overall := OverallScore(data.Scores)
	level := "good"
	if overall > excellentFit {
		level = "excellent"
	}

	analysis := OptionAnalysis{
		Option:         option,
		FitScore:       percent(overall),
		FitLevel:       level,
		Gains:          make([]Gain, 0, len(data.Tradeoffs)),
		Losses:         make([]Loss, 0, len(data.Tradeoffs)),
		WhenWins:       data.BestFor,
		WhenLoses:      data.WorstFor,
		Recommendation: fmt.Sprintf("%s is a strong fit based on your constraints", option),
	}
	for _, t := range data.Tradeoffs {
		analysis.Gains = append(analysis.Gains, Gain{
			Benefit:     t.Benefit,
			Impact:      gainImpact,
			Explanation: fmt.Sprintf("%s - detailed analysis based on your constraints", t.Benefit),
		})
		analysis.Losses = append(analysis.Losses, Loss{
			TradeOff:    t.Cost,
			Severity:    lossSeverity,
			Explanation: fmt.Sprintf("%s - impact assessment for your use case", t.Cost),
		})
	}
	return analysis
}

// OverallScore returns the "overall" score, or the mean of all scores when absent
func OverallScore(scores map[string]float64) float64 {
	if v, ok := scores["overall"]; ok {
		return v
	}
	if len(scores) == 0 {
		return 0
	}

	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sum float64
	for _, k := range keys {
		sum += scores[k]
	}
	return sum / float64(len(scores))
}

// QuestionOption is one side of a binary guidance question
type QuestionOption struct {
	Position       string `json:"position" yaml:"position"`
	Emoji          string `json:"emoji" yaml:"emoji"`
	Label          string `json:"label" yaml:"label"`
	Description    string `json:"description" yaml:"description"`
	SupportsOption string `json:"supports_option" yaml:"supports_option"`
}

// GuidancePayload is the decision guidance report
type GuidancePayload struct {
	CurrentStatus   string           `json:"current_status" yaml:"current_status"`
	KeyQuestion     string           `json:"key_question" yaml:"key_question"`
	QuestionOptions []QuestionOption `json:"question_options" yaml:"question_options"`
	Hints           []string         `json:"hints" yaml:"hints"`
	SuggestedNext   string           `json:"suggested_next_option_to_compare" yaml:"suggested_next_option_to_compare"`
	DecisionPath    []string         `json:"decision_path" yaml:"decision_path"`

	// DecisionReport is the rendered decision path for the compared options
	DecisionReport string `json:"decision_report,omitempty" yaml:"decision_report,omitempty"`
}

var costOrPerformance = []QuestionOption{
	{
		Position:       "left",
		Emoji:          "💰",
		Label:          "Cost Optimization",
		Description:    "Minimize operational expenses and infrastructure costs",
		SupportsOption: "Cost-effective solutions",
	},
	{
		Position:       "right",
		Emoji:          "⚡",
		Label:          "Performance",
		Description:    "Maximize speed, reliability, and user experience",
		SupportsOption: "High-performance solutions",
	},
}

var decisionSteps = []string{"Define constraints", "Compare options", "Analyze trades", "Make decision"}

// StaticGuidance is returned when no options are supplied
func StaticGuidance() GuidancePayload {
	return GuidancePayload{
		CurrentStatus:   "Analyzing your technology options",
		KeyQuestion:     "Which factor is most important for your project success?",
		QuestionOptions: append([]QuestionOption(nil), costOrPerformance...),
		Hints: []string{
			"Your budget constraints favor serverless solutions",
			"Consider long-term maintenance costs",
			"Evaluate team expertise and learning curve",
		},
		SuggestedNext: "Consider hybrid approaches",
		DecisionPath:  append([]string(nil), decisionSteps...),
	}
}

// Guidance steers the user for the given constraints and options. Without
// options it returns the static guidance.
func (o *Orchestrator) Guidance(input string, options []string) GuidancePayload {
	payload := StaticGuidance()
	if len(options) == 0 {
		return payload
	}

	result := o.Run(input, options)
	if result.Fallback() {
		// keep the static hints; the canned comparison carries no real signal
		payload.CurrentStatus = fmt.Sprintf("Comparing %s", strings.Join(options, " and "))
		payload.KeyQuestion = result.Comparison.NextQuestion
		return payload
	}

	comparison := result.Comparison
	payload.CurrentStatus = fmt.Sprintf("Comparing %s", strings.Join(types.OptionNames(comparison.Options), " and "))
	payload.KeyQuestion = comparison.NextQuestion
	if len(comparison.ClarifyingQuestions) > 0 {
		payload.Hints = comparison.ClarifyingQuestions
	}
	payload.SuggestedNext = o.suggestNext(comparison.Options)
	payload.DecisionReport = steering.DecisionPath(comparison.Options, comparison.Requirements)
	return payload
}

// suggestNext names the first catalog technology not already compared
func (o *Orchestrator) suggestNext(compared []types.OptionScore) string {
	seen := make(map[string]bool, len(compared))
	for _, c := range compared {
		seen[c.Name] = true
	}
	for _, tech := range o.kb.Technologies() {
		if !seen[tech.Name] {
			return "Consider " + tech.Name
		}
	}
	return "Consider hybrid approaches"
}
