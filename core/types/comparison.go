package types

// TradeOff pairs a benefit with its cost
type TradeOff struct {
	Benefit    string     `json:"benefit" yaml:"benefit"`
	Cost       string     `json:"cost" yaml:"cost"`
	Confidence Confidence `json:"confidence" yaml:"confidence"`
	DataSource string     `json:"dataSource,omitempty" yaml:"data_source,omitempty"`
}

// OptionScore is one scored technology option
type OptionScore struct {
	// Name is the canonical technology name
	Name string `json:"name" yaml:"name"`

	// Scores maps attribute keys to adjusted scores
	Scores map[string]float64 `json:"scores" yaml:"scores"`

	// Tradeoffs lists benefit/cost statements, at most five after analysis
	Tradeoffs []TradeOff `json:"tradeoffs" yaml:"tradeoffs"`

	BestFor  string `json:"bestFor" yaml:"best_for"`
	WorstFor string `json:"worstFor" yaml:"worst_for"`
}

// ComparisonResult is the terminal artifact of one orchestration call
type ComparisonResult struct {
	Requirements        []Constraint  `json:"requirements" yaml:"requirements"`
	Options             []OptionScore `json:"options" yaml:"options"`
	NextQuestion        string        `json:"nextQuestion" yaml:"next_question"`
	ClarifyingQuestions []string      `json:"clarifyingQuestions" yaml:"clarifying_questions"`
}

// OptionNames returns the names of options in order
func OptionNames(options []OptionScore) []string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Name
	}
	return names
}
