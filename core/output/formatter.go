// Package output renders comparison reports.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"tech-verdict/core/types"
	"tech-verdict/core/ui"
	tverrors "tech-verdict/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal view
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatMarkdown is a GitHub-flavored markdown report
	FormatMarkdown Format = "markdown"

	// FormatHTML is a standalone HTML report
	FormatHTML Format = "html"
)

// Report is everything a formatter may render
type Report struct {
	// Input is the constraint text the comparison was run on
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Comparison is the pipeline result
	Comparison types.ComparisonResult `json:"comparison" yaml:"comparison"`

	// DecisionPath is the rendered decision path, empty when not requested
	DecisionPath string `json:"decision_path,omitempty" yaml:"decision_path,omitempty"`

	// Fallback is set when the canned comparison was returned
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding every built-in formatter
func NewRegistry(noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	for _, f := range []Formatter{
		&CLIFormatter{NoColor: noColor},
		JSONFormatter{Indent: "  "},
		YAMLFormatter{},
		MarkdownFormatter{},
		HTMLFormatter{},
	} {
		_ = r.Register(f)
	}
	return r
}

// Register adds a formatter; a format may be registered once
func (r *Registry) Register(f Formatter) error {
	if _, ok := r.formatters[f.Format()]; ok {
		return tverrors.Newf(tverrors.TypeInternal, "formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// Formats lists the registered formats in name order
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Render looks up format and renders report with it
func (r *Registry) Render(w io.Writer, format Format, report *Report) error {
	f, ok := r.Get(format)
	if !ok {
		return tverrors.Input(fmt.Sprintf("unknown output format %q (want one of %v)", format, r.Formats()))
	}
	return f.Render(w, report)
}

// CLIFormatter renders the terminal view
type CLIFormatter struct {
	NoColor bool
}

func (f *CLIFormatter) Format() Format { return FormatCLI }

func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	uw := ui.NewWriter(w, f.NoColor)
	if report.Fallback {
		uw.Warning("Some options are not in the knowledge base; showing generic estimates")
	}
	uw.DisplayComparison(report.Comparison)
	uw.DisplayDecisionPath(report.DecisionPath)
	return nil
}

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	Indent string
}

func (f JSONFormatter) Format() Format { return FormatJSON }

func (f JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(report)
}

// YAMLFormatter renders the report as YAML
type YAMLFormatter struct{}

func (YAMLFormatter) Format() Format { return FormatYAML }

func (YAMLFormatter) Render(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
