// Package tradeoff enriches scored options with constraint-specific trade-offs.
package tradeoff

import (
	"fmt"
	"strings"

	"tech-verdict/core/knowledge"
	"tech-verdict/core/types"
)

// MaxTradeoffs caps the trade-off list of every analyzed option
const MaxTradeoffs = 5

// Analyzer adds trade-offs from the (technology, category) table
type Analyzer struct {
	kb *knowledge.Base
}

// New creates an analyzer. A nil base selects the built-in one.
func New(kb *knowledge.Base) *Analyzer {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &Analyzer{kb: kb}
}

// Analyze returns new option records with only Tradeoffs replaced.
// Input options are not modified.
func (a *Analyzer) Analyze(options []types.OptionScore, constraints []types.Constraint) []types.OptionScore {
	out := make([]types.OptionScore, len(options))
	for i, option := range options {
		enriched := option
		enriched.Tradeoffs = a.enrich(option, constraints)
		out[i] = enriched
	}
	return out
}

func (a *Analyzer) enrich(option types.OptionScore, constraints []types.Constraint) []types.TradeOff {
	combined := make([]types.TradeOff, 0, len(option.Tradeoffs)+len(constraints))
	combined = append(combined, option.Tradeoffs...)
	for _, c := range constraints {
		if t, ok := a.kb.ConstraintTradeoff(option.Name, c.Category); ok {
			combined = append(combined, t)
		}
	}
	return Dedupe(combined, MaxTradeoffs)
}

type pairKey struct {
	benefit string
	cost    string
}

// Dedupe drops repeated (benefit, cost) pairs keeping the first and truncates to limit
func Dedupe(list []types.TradeOff, limit int) []types.TradeOff {
	seen := make(map[pairKey]bool, len(list))
	out := make([]types.TradeOff, 0, min(len(list), limit))
	for _, t := range list {
		if len(out) == limit {
			break
		}
		k := pairKey{t.Benefit, t.Cost}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}

// Summarize renders one block per option with a bullet per trade-off
func Summarize(options []types.OptionScore) string {
	blocks := make([]string, 0, len(options))
	for _, option := range options {
		var sb strings.Builder
		sb.WriteString(option.Name)
		sb.WriteString(":")
		for _, t := range option.Tradeoffs {
			fmt.Fprintf(&sb, "\n  • %s vs %s (%s)", t.Benefit, t.Cost, t.Confidence)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}
