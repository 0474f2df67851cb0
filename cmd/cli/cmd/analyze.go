package cmd

import (
	"github.com/spf13/cobra"

	"tech-verdict/core/ui"
)

var analyzeFormat string

// analyzeCmd reports the gains and losses of a single option
var analyzeCmd = &cobra.Command{
	Use:   "analyze <option>",
	Short: "Show what a single technology gains and loses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		analysis := orch.AnalyzeOption(args[0])
		out := cmd.OutOrStdout()
		if analyzeFormat != "cli" {
			return encode(out, analyzeFormat, analysis)
		}

		w := ui.NewWriter(out, colorDisabled(out))
		w.Header(analysis.Option)
		w.Println("Fit: %d%% (%s)", analysis.FitScore, analysis.FitLevel)
		w.Println("")

		w.SubHeader("Gains")
		for _, g := range analysis.Gains {
			w.Success("%s", g.Benefit)
		}
		w.SubHeader("Losses")
		for _, l := range analysis.Losses {
			w.Warning("%s", l.TradeOff)
		}
		w.Println("")
		w.Println("%s", analysis.WhenWins)
		w.Println("%s", analysis.WhenLoses)
		w.Info("%s", analysis.Recommendation)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "cli", "output format (cli, json, yaml)")
}
