package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tech-verdict/core/parser"
	"tech-verdict/core/ui"
)

var (
	parseFormat string
	parseHints  map[string]string
)

// parseCmd shows how constraint text is read
var parseCmd = &cobra.Command{
	Use:   "parse [constraints]",
	Short: "Show the constraints extracted from text",
	Long: `Extract weighted constraints from free text.

With --hint, the structured hints are weighted by the configured AI provider
instead, falling back to rule-based weights when it is unavailable.

Examples:
  tech-verdict parse "5 person startup, low budget, variable load"
  tech-verdict parse --hint budget=low --hint team=small`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "cli", "output format (cli, json, yaml)")
	parseCmd.Flags().StringToStringVar(&parseHints, "hint", nil, "structured hint key=value, weighted by the AI provider")
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(parseHints) > 0 {
		return runParseHints(cmd.Context(), out)
	}

	parsed := parser.Parse(strings.Join(args, " "))
	if parseFormat != "cli" {
		return encode(out, parseFormat, parsed)
	}

	w := ui.NewWriter(out, colorDisabled(out))
	w.Header("Constraints")
	if len(parsed.Constraints) == 0 {
		w.Warning("No constraint keywords found")
	} else {
		table := w.NewTable("Constraint", "Value", "Category", "Weight")
		for _, c := range parsed.Constraints {
			table.AddRow(c.Name, c.Value.String(), c.Category.String(), fmt.Sprintf("%.2f", c.Weight))
		}
		table.Render()
	}
	w.Println("")
	w.Info("Confidence: %.0f%%", parsed.Confidence*100)
	for _, q := range parsed.Clarifications {
		w.Println("  ? %s", q)
	}
	return nil
}

func runParseHints(ctx context.Context, out io.Writer) error {
	orch, err := newOrchestrator()
	if err != nil {
		return err
	}

	raw := make(map[string]interface{}, len(parseHints))
	for k, v := range parseHints {
		raw[k] = v
	}

	w := ui.NewWriter(out, colorDisabled(out))
	interactive := parseFormat == "cli" && !colorDisabled(out)
	var spinner *ui.Spinner
	if interactive {
		spinner = w.NewSpinner("Asking " + orch.Provider().Name() + "...")
		spinner.Start()
	}
	analysis, err := orch.ParseConstraintsWithAI(ctx, raw)
	if spinner != nil {
		spinner.Stop(err == nil)
	}
	if err != nil {
		return err
	}

	if parseFormat != "cli" {
		return encode(out, parseFormat, analysis)
	}

	keys := make([]string, 0, len(analysis.ParsedConstraints))
	for k := range analysis.ParsedConstraints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w.Header("Weighted Hints")
	table := w.NewTable("Hint", "Value", "Weight")
	for _, k := range keys {
		h := analysis.ParsedConstraints[k]
		table.AddRow(k, h.Value.String(), fmt.Sprintf("%.2f", h.Weight))
	}
	table.Render()
	w.Println("")
	w.Info("%s (confidence %.0f%%)", analysis.Summary, analysis.Confidence*100)
	return nil
}

// encode writes v as json or yaml
func encode(out io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want cli, json or yaml)", format)
	}
}
