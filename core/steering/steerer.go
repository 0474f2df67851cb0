// Package steering picks the next question to ask instead of naming a winner.
package steering

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"tech-verdict/core/types"
)

const (
	// MaxClarifyingQuestions caps the missing-category prompts
	MaxClarifyingQuestions = 3

	// spreadThreshold is the max-min score gap that makes a constraint decisive
	spreadThreshold = 0.3

	// leaderBand is how close to the best score an option must be to be named
	leaderBand = 0.1

	// HardConstraintWeight marks constraints every viable option must satisfy
	HardConstraintWeight = 0.7

	// MinViableScore is the score a viable option needs on each hard constraint
	MinViableScore = 0.3
)

// Fixed prompts
const (
	PromptNoOptions = "Please provide at least one technology option to compare."

	QuestionBudget      = "What is your budget range? (affects cost-benefit analysis)"
	QuestionTeam        = "How many engineers will maintain this? (affects operational overhead)"
	QuestionPerformance = "What are your latency requirements? (affects technology choice)"
	QuestionScalability = "What is your expected user growth? (affects scalability needs)"
	QuestionOperational = "How much operational overhead can your team handle? (affects managed vs self-hosted)"
)

// Decision path headers
const (
	HeaderDecisionPath = "DECISION PATH:"
	HeaderTradeoffs    = "KEY TRADE-OFFS:"
)

// categoryQuestions is checked in order
var categoryQuestions = []struct {
	category types.Category
	question string
}{
	{types.CategoryBudget, QuestionBudget},
	{types.CategoryTeam, QuestionTeam},
	{types.CategoryPerformance, QuestionPerformance},
	{types.CategoryScalability, QuestionScalability},
	{types.CategoryOperational, QuestionOperational},
}

// Guidance is the steering output
type Guidance struct {
	NextQuestion        string   `json:"nextQuestion" yaml:"next_question"`
	ClarifyingQuestions []string `json:"clarifyingQuestions" yaml:"clarifying_questions"`
}

// Steerer generates follow-up questions. The zero value is ready to use.
type Steerer struct{}

// New creates a steerer
func New() *Steerer {
	return &Steerer{}
}

// Steer computes the next question and the clarifying questions
func (s *Steerer) Steer(options []types.OptionScore, constraints []types.Constraint) Guidance {
	return Guidance{
		NextQuestion:        NextQuestion(options, constraints),
		ClarifyingQuestions: ClarifyingQuestions(constraints),
	}
}

// NextQuestion phrases a question around the most differentiating constraint
func NextQuestion(options []types.OptionScore, constraints []types.Constraint) string {
	switch len(options) {
	case 0:
		return PromptNoOptions
	case 1:
		return fmt.Sprintf("You've selected %s. What specific concerns do you have about this choice?", options[0].Name)
	}

	if ranked := RankByVariance(options, constraints); len(ranked) > 0 {
		top := ranked[0]
		scores := scoresFor(options, top)
		hi, lo := slices.Max(scores), slices.Min(scores)

		if hi-lo > spreadThreshold {
			leaders := make([]string, 0, len(options))
			for i, o := range options {
				if scores[i] > hi-leaderBand {
					leaders = append(leaders, o.Name)
				}
			}
			// the cost/performance framing is fixed regardless of the constraint
			return fmt.Sprintf("For %s, %s excel. Between these, which matters more to you - cost or performance?",
				top, strings.Join(leaders, " and "))
		}
	}

	return fmt.Sprintf("Between %s, which aligns best with your team's expertise?",
		strings.Join(types.OptionNames(options), " and "))
}

// RankByVariance orders constraint names by the population variance of the
// options' scores under that name, highest first. Missing scores count as 0.
func RankByVariance(options []types.OptionScore, constraints []types.Constraint) []string {
	type ranked struct {
		name     string
		variance float64
	}

	list := make([]ranked, 0, len(constraints))
	for _, c := range constraints {
		list = append(list, ranked{name: c.Name, variance: variance(scoresFor(options, c.Name))})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].variance > list[j].variance })

	names := make([]string, len(list))
	for i, r := range list {
		names[i] = r.name
	}
	return names
}

// ClarifyingQuestions asks about every missing category, at most three
func ClarifyingQuestions(constraints []types.Constraint) []string {
	questions := make([]string, 0, MaxClarifyingQuestions)
	for _, cq := range categoryQuestions {
		if len(questions) == MaxClarifyingQuestions {
			break
		}
		if !types.HasCategory(constraints, cq.category) {
			questions = append(questions, cq.question)
		}
	}
	return questions
}

// Viable keeps options scoring above MinViableScore on every hard constraint
func Viable(options []types.OptionScore, constraints []types.Constraint) []types.OptionScore {
	hard := make([]types.Constraint, 0, len(constraints))
	for _, c := range constraints {
		if c.Weight > HardConstraintWeight {
			hard = append(hard, c)
		}
	}

	viable := make([]types.OptionScore, 0, len(options))
	for _, o := range options {
		ok := true
		for _, c := range hard {
			if o.Scores[c.Name] <= MinViableScore {
				ok = false
				break
			}
		}
		if ok {
			viable = append(viable, o)
		}
	}
	return viable
}

// DecisionPath renders a plain-text report of viable options and their
// leading trade-offs. Consumers may parse the two section headers.
func DecisionPath(options []types.OptionScore, constraints []types.Constraint) string {
	lines := []string{HeaderDecisionPath, ""}

	viable := Viable(options, constraints)
	if len(viable) < len(options) {
		kept := make(map[string]bool, len(viable))
		for _, o := range viable {
			kept[o.Name] = true
		}
		var excluded []string
		for _, o := range options {
			if !kept[o.Name] {
				excluded = append(excluded, o.Name)
			}
		}

		if len(viable) == 0 {
			lines = append(lines, "✓ Based on your constraints, no options are viable.")
		} else {
			lines = append(lines, fmt.Sprintf("✓ Based on your constraints, %s are viable.",
				strings.Join(types.OptionNames(viable), " and ")))
		}
		lines = append(lines,
			fmt.Sprintf("✗ %s don't meet your requirements.", strings.Join(excluded, ", ")),
			"")
	}

	lines = append(lines, HeaderTradeoffs)
	for _, o := range viable {
		lines = append(lines, "\n"+o.Name+":")
		for _, t := range o.Tradeoffs[:min(2, len(o.Tradeoffs))] {
			lines = append(lines, "  ✓ "+t.Benefit, "  ✗ "+t.Cost)
		}
	}
	return strings.Join(lines, "\n")
}

func scoresFor(options []types.OptionScore, name string) []float64 {
	scores := make([]float64, len(options))
	for i, o := range options {
		scores[i] = o.Scores[name]
	}
	return scores
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var sum float64
	for _, x := range xs {
		sum += (x - mean) * (x - mean)
	}
	return sum / float64(len(xs))
}
