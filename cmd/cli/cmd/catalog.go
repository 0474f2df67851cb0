package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tech-verdict/core/knowledge"
	"tech-verdict/core/output"
	"tech-verdict/core/ui"
	"tech-verdict/internal/config"
)

var catalogFile string

// catalogCmd lists the knowledge base
var catalogCmd = &cobra.Command{
	Use:   "catalog [technology]",
	Short: "List known technologies, or show one in detail",
	Long: `List the technologies in the knowledge base.

A catalog file (HCL or HCL JSON) adds or replaces entries; pass it with
--catalog or set knowledge.catalog_path in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "catalog", "", "catalog file merged over the built-in table")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	path := catalogFile
	if path == "" {
		path = config.Get().Knowledge.CatalogPath
	}
	kb, err := loadKnowledge(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := ui.NewWriter(out, colorDisabled(out))

	if len(args) == 1 {
		tech, ok := kb.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown technology %q", args[0])
		}
		showTechnology(w, kb, tech)
		return nil
	}

	w.Header("Knowledge Base")
	table := w.NewTable("Key", "Name", "Attributes")
	for _, tech := range kb.Technologies() {
		keys := make([]string, len(tech.Attributes))
		for i, a := range tech.Attributes {
			keys[i] = a.Key
		}
		table.AddRow(tech.Key, tech.Name, strings.Join(keys, ", "))
	}
	table.Render()
	return nil
}

func showTechnology(w *ui.Writer, kb *knowledge.Base, tech knowledge.TechOption) {
	w.Header(tech.Name)

	table := w.NewTable("Attribute", "Value", "")
	for _, a := range tech.Attributes {
		table.AddRow(output.AttributeTitle(a.Key), fmt.Sprintf("%.2f", a.Value), w.ScoreBar(a.Value))
	}
	table.Render()

	tradeoffs := kb.TradeoffsFor(tech.Name)
	if len(tradeoffs) == 0 {
		return
	}
	w.Println("")
	w.SubHeader("Trade-offs")
	for _, t := range tradeoffs {
		w.Println("  • %s vs %s (%s)", t.Benefit, t.Cost, t.Confidence)
	}
}
