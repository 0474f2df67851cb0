// Package cmd - compare command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tech-verdict/core/output"
	"tech-verdict/core/parser"
	"tech-verdict/core/steering"
	"tech-verdict/core/tradeoff"
	"tech-verdict/internal/config"
	"tech-verdict/internal/logging"
)

var (
	compareOptions      []string
	outputFormat        string
	showDecisionPath    bool
	showTradeoffSummary bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [constraints]",
	Short: "Compare technology options against constraints",
	Long: `Score two or more technology options against free-text constraints.

Constraint keywords: %s.
The word after a keyword qualifies it ("budget low" is read as budget=low).

Examples:
  tech-verdict compare -o lambda,ec2 "5 person startup, low budget, variable load"
  tech-verdict compare -o mongodb -o dynamodb --decision-path "high scale"
  tech-verdict compare -o fargate,ec2 -f json "performance critical"`,
	RunE: runCompare,
}

func init() {
	compareCmd.Long = fmt.Sprintf(compareCmd.Long, strings.Join(parser.Keywords(), ", "))

	compareCmd.Flags().StringSliceVarP(&compareOptions, "options", "o", nil, "technologies to compare (comma-separated or repeated)")
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, yaml, markdown, html)")
	compareCmd.Flags().BoolVarP(&showDecisionPath, "decision-path", "d", false, "append the decision path")
	compareCmd.Flags().BoolVar(&showTradeoffSummary, "summary", false, "print a plain-text trade-off summary instead of the report")
	_ = compareCmd.MarkFlagRequired("options")
}

func runCompare(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	if len(compareOptions) < 2 {
		return fmt.Errorf("need at least two options, got %d", len(compareOptions))
	}

	orch, err := newOrchestrator()
	if err != nil {
		return err
	}

	result := orch.Run(input, compareOptions)
	if result.Fallback() {
		logging.Warn("comparison fell back to generic estimates",
			zap.Stringer("stage", result.Stage), zap.Error(result.Err))
	}

	if showTradeoffSummary {
		fmt.Fprintln(cmd.OutOrStdout(), tradeoff.Summarize(result.Comparison.Options))
		return nil
	}

	report := &output.Report{
		Input:      input,
		Comparison: result.Comparison,
		Fallback:   result.Fallback(),
	}
	if showDecisionPath || config.Get().Output.ShowDecisionPath {
		report.DecisionPath = steering.DecisionPath(result.Comparison.Options, result.Comparison.Requirements)
	}

	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	out := cmd.OutOrStdout()
	return output.NewRegistry(colorDisabled(out)).Render(out, output.Format(format), report)
}
