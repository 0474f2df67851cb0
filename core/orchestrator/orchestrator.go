// Package orchestrator sequences the decision pipeline:
// 1. Parse constraints
// 2. Score options
// 3. Enrich trade-offs
// 4. Steer the next question
//
// Any stage failure yields the canned fallback comparison instead of an error.
package orchestrator

import (
	"fmt"

	"go.uber.org/zap"

	"tech-verdict/adapters/ai"
	"tech-verdict/core/engine"
	"tech-verdict/core/knowledge"
	"tech-verdict/core/parser"
	"tech-verdict/core/steering"
	"tech-verdict/core/tradeoff"
	"tech-verdict/core/types"
	tverrors "tech-verdict/internal/errors"
	"tech-verdict/internal/logging"
)

// Source tells which branch produced a comparison
type Source string

const (
	SourceComputed Source = "computed"
	SourceFallback Source = "fallback"
)

// Stage identifies a pipeline step
type Stage int

const (
	StageNone Stage = iota
	StageParse
	StageCompare
	StageAnalyze
	StageSteer
)

// String returns the stage name
func (s Stage) String() string {
	names := []string{"none", "parse", "compare", "analyze", "steer"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Result is the two-branch outcome of Run
type Result struct {
	Comparison types.ComparisonResult
	Source     Source

	// Stage and Err are set on the fallback branch
	Stage Stage
	Err   error
}

// Fallback reports whether the canned result was returned
func (r Result) Fallback() bool {
	return r.Source == SourceFallback
}

// Orchestrator wires the pipeline stages together
type Orchestrator struct {
	kb       *knowledge.Base
	parser   *parser.Parser
	engine   *engine.Engine
	analyzer *tradeoff.Analyzer
	steerer  *steering.Steerer
	provider ai.Provider
	log      *zap.Logger
}

// New creates an orchestrator. A nil base selects the built-in knowledge base;
// a nil provider selects Gemini without an API key.
func New(kb *knowledge.Base, provider ai.Provider) *Orchestrator {
	if kb == nil {
		kb = knowledge.Default()
	}
	if provider == nil {
		provider = ai.NewGemini(ai.GeminiConfig{})
	}
	return &Orchestrator{
		kb:       kb,
		parser:   parser.New(),
		engine:   engine.New(kb),
		analyzer: tradeoff.New(kb),
		steerer:  steering.New(),
		provider: provider,
		log:      logging.Named("orchestrator"),
	}
}

// Knowledge returns the knowledge base in use
func (o *Orchestrator) Knowledge() *knowledge.Base {
	return o.kb
}

// Provider returns the AI provider in use
func (o *Orchestrator) Provider() ai.Provider {
	return o.provider
}

// Run executes the pipeline and reports which branch produced the result
func (o *Orchestrator) Run(input string, options []string) (result Result) {
	stage := StageParse
	defer func() {
		if r := recover(); r != nil {
			err := tverrors.Internal(fmt.Sprintf("panic in %s stage", stage), fmt.Errorf("%v", r))
			result = o.fallback(options, stage, err)
		}
	}()

	parsed := o.parser.Parse(input)

	stage = StageCompare
	scored, err := o.engine.Compare(options, parsed.Constraints)
	if err != nil {
		return o.fallback(options, stage, err)
	}

	stage = StageAnalyze
	analyzed := o.analyzer.Analyze(scored, parsed.Constraints)

	stage = StageSteer
	guidance := o.steerer.Steer(analyzed, parsed.Constraints)

	return Result{
		Comparison: types.ComparisonResult{
			Requirements:        parsed.Constraints,
			Options:             analyzed,
			NextQuestion:        guidance.NextQuestion,
			ClarifyingQuestions: guidance.ClarifyingQuestions,
		},
		Source: SourceComputed,
	}
}

// Orchestrate returns the comparison only. Fallbacks are logged, never returned.
func (o *Orchestrator) Orchestrate(input string, options []string) types.ComparisonResult {
	result := o.Run(input, options)
	if result.Fallback() {
		o.log.Warn("pipeline failed, using fallback",
			zap.Stringer("stage", result.Stage),
			zap.Strings("options", options),
			zap.Error(result.Err))
	}
	return result.Comparison
}

func (o *Orchestrator) fallback(options []string, stage Stage, err error) Result {
	return Result{
		Comparison: Fallback(o.kb, options),
		Source:     SourceFallback,
		Stage:      stage,
		Err:        err,
	}
}
