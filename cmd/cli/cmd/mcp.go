package cmd

import (
	"github.com/spf13/cobra"

	"tech-verdict/adapters/mcptools"
)

// mcpCmd serves the comparison tools over MCP stdio
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve parse_constraints, compare_options and decision_path as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, err := newOrchestrator()
		if err != nil {
			return err
		}
		return mcptools.Serve(orch, Version)
	},
}
