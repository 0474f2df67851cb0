// Package knowledge holds the static technology knowledge base.
// A Base is built once at startup and never mutated afterwards, so it is
// safe for any number of concurrent readers without locking.
package knowledge

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tech-verdict/core/types"
)

// Attribute is one named quality score in [0,1]
type Attribute struct {
	Key   string  `json:"key" yaml:"key"`
	Value float64 `json:"value" yaml:"value"`
}

// TechOption is a knowledge base entry.
// Attributes keep declaration order.
type TechOption struct {
	Key        string      `json:"key" yaml:"key"`
	Name       string      `json:"name" yaml:"name"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// AttributeMap returns the attributes as a map
func (t TechOption) AttributeMap() map[string]float64 {
	m := make(map[string]float64, len(t.Attributes))
	for _, a := range t.Attributes {
		m[a.Key] = a.Value
	}
	return m
}

// Base is an immutable set of knowledge tables
type Base struct {
	techs map[string]TechOption

	// tradeoffs is keyed by canonical technology name
	tradeoffs map[string][]types.TradeOff

	// constraintTradeoffs is keyed by canonical name, then category
	constraintTradeoffs map[string]map[types.Category]types.TradeOff
}

// NormalizeKey lowercases name and removes all whitespace
func NormalizeKey(name string) string {
	lowered := cases.Lower(language.Und).String(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lowered)
}

// Lookup resolves a technology by user-supplied name
func (b *Base) Lookup(name string) (TechOption, bool) {
	t, ok := b.techs[NormalizeKey(name)]
	return t, ok
}

// TradeoffsFor returns a copy of the static trade-offs for a canonical name.
// Unknown names yield an empty list.
func (b *Base) TradeoffsFor(canonicalName string) []types.TradeOff {
	src := b.tradeoffs[canonicalName]
	out := make([]types.TradeOff, len(src))
	copy(out, src)
	return out
}

// ConstraintTradeoff returns the trade-off a constraint category adds for a technology
func (b *Base) ConstraintTradeoff(canonicalName string, category types.Category) (types.TradeOff, bool) {
	byCategory, ok := b.constraintTradeoffs[canonicalName]
	if !ok {
		return types.TradeOff{}, false
	}
	t, ok := byCategory[category]
	return t, ok
}

// Technologies lists all entries ordered by key
func (b *Base) Technologies() []TechOption {
	out := make([]TechOption, 0, len(b.techs))
	for _, t := range b.techs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of technologies
func (b *Base) Len() int {
	return len(b.techs)
}

// builder assembles a Base before it is frozen
type builder struct {
	base *Base
}

func newBuilder() *builder {
	return &builder{base: &Base{
		techs:               make(map[string]TechOption),
		tradeoffs:           make(map[string][]types.TradeOff),
		constraintTradeoffs: make(map[string]map[types.Category]types.TradeOff),
	}}
}

// from copies every table of src into a fresh builder
func from(src *Base) *builder {
	b := newBuilder()
	for k, t := range src.techs {
		b.base.techs[k] = t
	}
	for name, list := range src.tradeoffs {
		b.base.tradeoffs[name] = append([]types.TradeOff(nil), list...)
	}
	for name, byCategory := range src.constraintTradeoffs {
		cp := make(map[types.Category]types.TradeOff, len(byCategory))
		for c, t := range byCategory {
			cp[c] = t
		}
		b.base.constraintTradeoffs[name] = cp
	}
	return b
}

// technology adds or replaces an entry; a replaced entry loses its trade-off tables
func (b *builder) technology(key, name string, attrs ...Attribute) *builder {
	key = NormalizeKey(key)
	if old, ok := b.base.techs[key]; ok {
		delete(b.base.tradeoffs, old.Name)
		delete(b.base.constraintTradeoffs, old.Name)
	}
	b.base.techs[key] = TechOption{Key: key, Name: name, Attributes: attrs}
	return b
}

func (b *builder) tradeoffs(name string, list ...types.TradeOff) *builder {
	b.base.tradeoffs[name] = list
	return b
}

func (b *builder) constraintTradeoff(name string, category types.Category, t types.TradeOff) *builder {
	byCategory, ok := b.base.constraintTradeoffs[name]
	if !ok {
		byCategory = make(map[types.Category]types.TradeOff)
		b.base.constraintTradeoffs[name] = byCategory
	}
	byCategory[category] = t
	return b
}

func (b *builder) build() *Base {
	return b.base
}
