package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tech-verdict/core/types"
	tverrors "tech-verdict/internal/errors"
)

// ConstraintHints are the structured constraints posted by the web form.
// Unknown keys are kept for the prompt but ignored by the rule-based fallback.
type ConstraintHints struct {
	Budget      string `mapstructure:"budget"`
	Scale       string `mapstructure:"scale"`
	Performance string `mapstructure:"performance"`
	Team        string `mapstructure:"team"`

	Raw map[string]interface{} `mapstructure:",remain"`
}

// DecodeHints loosely decodes a request body into hints. Numbers and booleans
// are converted to strings.
func DecodeHints(raw map[string]interface{}) (ConstraintHints, error) {
	var hints ConstraintHints
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &hints,
	})
	if err != nil {
		return hints, tverrors.Internal("building hint decoder", err)
	}
	if err := dec.Decode(raw); err != nil {
		return hints, tverrors.Wrap(tverrors.TypeInput, "invalid constraint hints", err)
	}
	return hints, nil
}

// HintValue is one weighted hint
type HintValue struct {
	Value  types.Value `json:"value" yaml:"value"`
	Weight float64     `json:"weight" yaml:"weight"`
}

// ConstraintAnalysis is the reply of ParseConstraintsWithAI
type ConstraintAnalysis struct {
	ParsedConstraints map[string]HintValue `json:"parsed_constraints" yaml:"parsed_constraints"`
	Confidence        float64              `json:"confidence" yaml:"confidence"`
	Summary           string               `json:"summary" yaml:"summary"`
}

// DimensionScore is a 0-10 rating with a qualitative fit label
type DimensionScore struct {
	Value     float64 `json:"value" yaml:"value"`
	Fit       string  `json:"fit" yaml:"fit"`
	Reasoning string  `json:"reasoning" yaml:"reasoning"`
}

// MatrixEntry is one option row of an OptionMatrix
type MatrixEntry struct {
	Option     string                    `json:"option" yaml:"option"`
	Scores     map[string]DimensionScore `json:"scores" yaml:"scores"`
	OverallFit float64                   `json:"overall_fit" yaml:"overall_fit"`
	Confidence float64                   `json:"confidence" yaml:"confidence"`
}

// OptionMatrix is the reply of CompareOptionsWithAI
type OptionMatrix struct {
	ComparisonMatrix   []MatrixEntry `json:"comparison_matrix" yaml:"comparison_matrix"`
	ScoringMethodology string        `json:"scoring_methodology" yaml:"scoring_methodology"`
	DataSource         string        `json:"data_source" yaml:"data_source"`
}

// ParseConstraintsWithAI asks the provider to weight the hints. Provider
// failures and replies that do not match the schema yield the rule-based weighting.
func (o *Orchestrator) ParseConstraintsWithAI(ctx context.Context, raw map[string]interface{}) (ConstraintAnalysis, error) {
	hints, err := DecodeHints(raw)
	if err != nil {
		return ConstraintAnalysis{}, err
	}

	prompt := fmt.Sprintf("Parse these technology constraints and assign weights (0-1):\n%s\n\nReturn JSON with parsed_constraints, confidence, and summary.",
		promptJSON(raw))

	var analysis ConstraintAnalysis
	if err := o.ask(ctx, prompt, constraintAnalysisSchema, &analysis); err != nil {
		return RuleBasedConstraints(hints), nil
	}
	return analysis, nil
}

// CompareOptionsWithAI asks the provider for a scored matrix. Provider
// failures and replies that do not match the schema yield the canned matrix.
func (o *Orchestrator) CompareOptionsWithAI(ctx context.Context, raw map[string]interface{}, options []string) (OptionMatrix, error) {
	if raw == nil {
		raw = map[string]interface{}{}
	}
	prompt := fmt.Sprintf("Compare these technology options against constraints:\nOptions: %s\nConstraints: %s\n\nReturn comparison_matrix with scores, methodology, and data_source.",
		strings.Join(options, ", "), promptJSON(raw))

	var matrix OptionMatrix
	if err := o.ask(ctx, prompt, optionMatrixSchema, &matrix); err != nil {
		return o.RuleBasedMatrix(options), nil
	}
	return matrix, nil
}

// ask sends prompt to the provider and decodes a schema-valid reply into out
func (o *Orchestrator) ask(ctx context.Context, prompt string, schema *jsonschema.Schema, out interface{}) error {
	reply, err := o.provider.GenerateInsight(ctx, prompt)
	if err != nil {
		o.log.Warn("ai provider failed, using rule-based result",
			zap.String("provider", o.provider.Name()), zap.Error(err))
		return err
	}
	if err := decodeReply(reply, schema, out); err != nil {
		o.log.Info("ai reply rejected, using rule-based result",
			zap.String("provider", o.provider.Name()), zap.Error(err))
		return err
	}
	return nil
}

// RuleBasedConstraints weights the four known hints without a model
func RuleBasedConstraints(h ConstraintHints) ConstraintAnalysis {
	pick := func(v, def, strong string, hi, lo float64) HintValue {
		if v == "" {
			v = def
		}
		w := lo
		if v == strong {
			w = hi
		}
		return HintValue{Value: types.StringValue(v), Weight: w}
	}

	performance := h.Performance
	if performance == "" {
		performance = "standard"
	}

	return ConstraintAnalysis{
		ParsedConstraints: map[string]HintValue{
			"budget":      pick(h.Budget, "medium", "low", 0.9, 0.7),
			"scale":       pick(h.Scale, "medium", "large", 0.9, 0.7),
			"performance": pick(h.Performance, "standard", "critical", 0.95, 0.7),
			"team":        pick(h.Team, "medium", "small", 0.8, 0.6),
		},
		Confidence: 0.85,
		Summary:    fmt.Sprintf("AI-enhanced analysis: %s performance priority", performance),
	}
}

var ten = decimal.NewFromInt(10)

// RuleBasedMatrix derives a matrix from the canned fallback scores
func (o *Orchestrator) RuleBasedMatrix(options []string) OptionMatrix {
	matrix := OptionMatrix{
		ComparisonMatrix:   make([]MatrixEntry, 0, len(options)),
		ScoringMethodology: "AI-enhanced weighted scoring",
		DataSource:         "Real-time analysis with fallback data",
	}

	for _, name := range options {
		scores := FallbackScores(o.kb, name)
		matrix.ComparisonMatrix = append(matrix.ComparisonMatrix, MatrixEntry{
			Option: name,
			Scores: map[string]DimensionScore{
				"cost":        {Value: scaleTo10(scores["cost"]), Fit: "good", Reasoning: "AI analysis for " + name},
				"performance": {Value: scaleTo10(scores["performance"]), Fit: "good", Reasoning: "Performance evaluation"},
				"control":     {Value: scaleTo10(scores["complexity"]), Fit: "fair", Reasoning: "Control assessment"},
			},
			OverallFit: float64(percent(scores["overall"])),
			Confidence: 0.88,
		})
	}
	return matrix
}

func scaleTo10(v float64) float64 {
	return decimal.NewFromFloat(v).Mul(ten).Round(2).InexactFloat64()
}

// percent rounds a [0,1] score to a whole percentage
func percent(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}

func promptJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
