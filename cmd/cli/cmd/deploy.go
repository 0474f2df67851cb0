package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tech-verdict/adapters/deploy"
	"tech-verdict/internal/config"
)

var (
	deployProvider    string
	deployRegion      string
	deployEnvironment string
)

// deployCmd publishes a project through a deployment provider
var deployCmd = &cobra.Command{
	Use:   "deploy <project>",
	Short: "Deploy a project with the selected provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get().Deployment
		name := firstNonEmpty(deployProvider, cfg.Provider)

		provider := deploy.New(name)
		result, err := provider.Deploy(cmd.Context(), deploy.Config{
			ProjectName: args[0],
			Region:      firstNonEmpty(deployRegion, cfg.Region),
			Environment: firstNonEmpty(deployEnvironment, cfg.Environment),
		})
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("%s deployment failed: %s", provider.Name(), result.Error)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deployed %s to %s: %s\n", args[0], provider.Name(), result.URL)
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVarP(&deployProvider, "provider", "p", "", "deployment provider ("+strings.Join(deploy.Names(), ", ")+")")
	deployCmd.Flags().StringVarP(&deployRegion, "region", "r", "", "target region")
	deployCmd.Flags().StringVarP(&deployEnvironment, "env", "e", "", "target environment")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
