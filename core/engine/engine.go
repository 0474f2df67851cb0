// Package engine scores technology options against parsed constraints.
// It is a pure function of the knowledge base and its inputs.
package engine

import (
	"sort"
	"strings"

	"tech-verdict/core/knowledge"
	"tech-verdict/core/types"
	tverrors "tech-verdict/internal/errors"
)

// Engine is the comparison engine
type Engine struct {
	kb *knowledge.Base
}

// New creates an engine over a knowledge base.
// A nil base selects the built-in one.
func New(kb *knowledge.Base) *Engine {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &Engine{kb: kb}
}

// Knowledge returns the base the engine reads from
func (e *Engine) Knowledge() *knowledge.Base {
	return e.kb
}

// Compare scores each named option. Output order matches names.
// Any unknown name fails the whole call with an UNKNOWN_TECHNOLOGY error.
func (e *Engine) Compare(names []string, constraints []types.Constraint) ([]types.OptionScore, error) {
	techs := make([]knowledge.TechOption, 0, len(names))
	for _, name := range names {
		tech, ok := e.kb.Lookup(name)
		if !ok {
			return nil, tverrors.UnknownTechnology(name)
		}
		techs = append(techs, tech)
	}

	results := make([]types.OptionScore, 0, len(techs))
	for _, tech := range techs {
		bestFor, worstFor := Fit(tech)
		results = append(results, types.OptionScore{
			Name:      tech.Name,
			Scores:    Score(tech, constraints),
			Tradeoffs: e.kb.TradeoffsFor(tech.Name),
			BestFor:   bestFor,
			WorstFor:  worstFor,
		})
	}
	return results, nil
}

// Score adjusts every attribute by the mean weight of the constraints that
// match it. A constraint matches when its category equals the attribute or
// its lowercased name is a substring of the attribute.
func Score(tech knowledge.TechOption, constraints []types.Constraint) map[string]float64 {
	scores := make(map[string]float64, len(tech.Attributes))
	for _, a := range tech.Attributes {
		var sum float64
		var n int
		for _, c := range constraints {
			if string(c.Category) == a.Key || strings.Contains(a.Key, strings.ToLower(c.Name)) {
				sum += c.Weight
				n++
			}
		}
		if n == 0 {
			scores[a.Key] = a.Value
			continue
		}
		scores[a.Key] = a.Value * (sum / float64(n))
	}
	return scores
}

// Fit names the strongest and weakest raw attribute. Ties keep declaration order.
func Fit(tech knowledge.TechOption) (bestFor, worstFor string) {
	if len(tech.Attributes) == 0 {
		return "", ""
	}

	desc := append([]knowledge.Attribute(nil), tech.Attributes...)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].Value > desc[j].Value })

	asc := append([]knowledge.Attribute(nil), tech.Attributes...)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Value < asc[j].Value })

	bestFor = "Use if you prioritize " + displayAttribute(desc[0].Key)
	worstFor = "Avoid if " + displayAttribute(asc[0].Key) + " is critical"
	return bestFor, worstFor
}

func displayAttribute(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
