// Package parser turns free-text requirements into weighted constraints.
// Parsing is keyword lookup only; unknown words are ignored.
package parser

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"tech-verdict/core/types"
)

// Clarification prompts emitted by Parse
const (
	PromptMoreConstraints = "Could you provide more constraints to help narrow down options?"
	PromptTeamSize        = "What is your team size? (affects operational overhead)"
	PromptBudget          = "What is your budget range? (affects technology choices)"
)

// fullConfidence is the constraint count at which confidence saturates
const fullConfidence = 5

// keyword maps a recognized token to its category and base weight
type keyword struct {
	Category types.Category
	Weight   float64
}

var keywords = map[string]keyword{
	"budget":      {types.CategoryBudget, 0.9},
	"cost":        {types.CategoryBudget, 0.9},
	"cheap":       {types.CategoryBudget, 0.8},
	"expensive":   {types.CategoryBudget, 0.8},
	"performance": {types.CategoryPerformance, 0.9},
	"latency":     {types.CategoryPerformance, 0.9},
	"fast":        {types.CategoryPerformance, 0.8},
	"slow":        {types.CategoryPerformance, 0.7},
	"scale":       {types.CategoryScalability, 0.9},
	"scalable":    {types.CategoryScalability, 0.9},
	"scalability": {types.CategoryScalability, 0.9},
	"growth":      {types.CategoryScalability, 0.8},
	"team":        {types.CategoryTeam, 0.8},
	"people":      {types.CategoryTeam, 0.8},
	"startup":     {types.CategoryTeam, 0.7},
	"ops":         {types.CategoryOperational, 0.8},
	"operations":  {types.CategoryOperational, 0.8},
	"maintenance": {types.CategoryOperational, 0.8},
}

// Keywords lists the recognized keywords in alphabetical order
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsKeyword reports whether token is in the keyword table
func IsKeyword(token string) bool {
	_, ok := keywords[token]
	return ok
}

// Parser extracts constraints from text. The zero value is ready to use.
type Parser struct{}

// New creates a parser
func New() *Parser {
	return &Parser{}
}

// Parse builds a normalized constraint list from input
func (p *Parser) Parse(input string) types.ParsedConstraints {
	tokens := Tokenize(input)

	constraints := make([]types.Constraint, 0)
	seen := make(map[string]bool)
	for i, token := range tokens {
		kw, ok := keywords[token]
		if !ok || seen[token] {
			continue
		}
		seen[token] = true

		value := types.StringValue("high")
		if i+1 < len(tokens) && !IsKeyword(tokens[i+1]) {
			value = types.ParseValue(tokens[i+1])
		}

		constraints = append(constraints, types.Constraint{
			Name:     token,
			Value:    value,
			Weight:   kw.Weight,
			Category: kw.Category,
		})
	}

	normalize(constraints)

	return types.ParsedConstraints{
		Constraints:    constraints,
		RawInput:       input,
		Confidence:     math.Min(float64(len(constraints))/fullConfidence, 1),
		Clarifications: clarifications(constraints),
	}
}

// Parse runs the zero-value parser on input
func Parse(input string) types.ParsedConstraints {
	return New().Parse(input)
}

// Tokenize lowercases input and splits it on Unicode whitespace, commas and semicolons
func Tokenize(input string) []string {
	return strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// normalize scales weights in place so they sum to 1
func normalize(constraints []types.Constraint) {
	var total float64
	for _, c := range constraints {
		total += c.Weight
	}
	if total == 0 {
		return
	}
	for i := range constraints {
		constraints[i].Weight /= total
	}
}

// clarifications only checks team and budget. The steering stage asks
// about the remaining categories.
func clarifications(constraints []types.Constraint) []string {
	out := make([]string, 0, 3)
	if len(constraints) < 2 {
		out = append(out, PromptMoreConstraints)
	}
	if !types.HasCategory(constraints, types.CategoryTeam) {
		out = append(out, PromptTeamSize)
	}
	if !types.HasCategory(constraints, types.CategoryBudget) {
		out = append(out, PromptBudget)
	}
	return out
}
