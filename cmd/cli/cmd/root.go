// Package cmd provides the CLI commands for tech-verdict.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tech-verdict/adapters/ai"
	"tech-verdict/core/knowledge"
	"tech-verdict/core/orchestrator"
	"tech-verdict/internal/config"
	"tech-verdict/internal/logging"
)

// Version is the CLI version
const Version = "1.0.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tech-verdict",
	Short: "Compare technology options against your constraints",
	Long: `tech-verdict scores technology options against free-text constraints,
lists the trade-offs that matter and suggests the next question to ask.

Examples:
  tech-verdict compare -o lambda,ec2 "5 person startup, low budget, variable load"
  tech-verdict compare -o postgresql,dynamodb --format markdown "high scalability"
  tech-verdict analyze fargate
  tech-verdict catalog`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tech-verdict.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + "/.tech-verdict.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	} else if cfgFile == "" && os.Getenv("TECH_VERDICT_LOG_LEVEL") == "" {
		cfg.Logging.Level = "warn"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newOrchestrator builds the pipeline from the active configuration
func newOrchestrator() (*orchestrator.Orchestrator, error) {
	kb, err := loadKnowledge(config.Get().Knowledge.CatalogPath)
	if err != nil {
		return nil, err
	}

	cfg := config.Get().AI
	provider, err := ai.New(cfg.Provider, ai.Config{
		GeminiAPIKey:   cfg.GeminiAPIKey,
		GeminiEndpoint: cfg.GeminiEndpoint,
		OllamaHost:     cfg.OllamaHost,
		OllamaModel:    cfg.OllamaModel,
	})
	if err != nil {
		return nil, err
	}
	return orchestrator.New(kb, provider), nil
}

func loadKnowledge(catalogPath string) (*knowledge.Base, error) {
	if catalogPath == "" {
		return knowledge.Default(), nil
	}
	return knowledge.LoadCatalog(catalogPath)
}

// colorDisabled reports whether ANSI colors must be suppressed on out
func colorDisabled(out io.Writer) bool {
	if noColor || config.Get().Output.NoColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := out.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tech-verdict version %s\n", Version)
	},
}
