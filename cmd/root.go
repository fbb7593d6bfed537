package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rajatjindal/cloud-plugin/internal/cloud"
	"github.com/rajatjindal/cloud-plugin/internal/config"
)

// developerCloudFAQ is appended to command failures so users land on the
// troubleshooting docs instead of a bare error.
const developerCloudFAQ = "https://developer.fermyon.com/cloud/faq"

var (
	// Global flags
	environmentName string
)

var rootCmd = &cobra.Command{
	Use:   "cloud",
	Short: "Manage applications deployed to the cloud platform",
	Long: `Manage applications deployed to the cloud platform.

Authenticate once, then inspect apps and fetch their logs:

  cloud login                    # Authorize this device
  cloud apps list                # List deployed apps
  cloud logs my-app              # Fetch recent logs
  cloud logs my-app --follow     # Tail logs

Environment Management:
  cloud use staging              # Switch to the "staging" environment
  cloud environments             # List configured environments
  cloud status                   # Show current environment and auth status`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVar(&environmentName, "environment-name", "",
		"Deployment environment to use (saved by 'cloud login')")

	// Bind flags to viper
	_ = viper.BindPFlag("environment-name", rootCmd.PersistentFlags().Lookup("environment-name"))
}

func initConfig() {
	// Read from environment variables (FERMYON_ENVIRONMENT_NAME etc.)
	viper.SetEnvPrefix("FERMYON")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Priority for environment: --environment-name flag > env var > config file
	if environmentName == "" {
		environmentName = viper.GetString("environment-name")
	}
}

// createCloudClient builds an authenticated client for the selected
// deployment environment.
func createCloudClient(ctx context.Context) (*cloud.Client, error) {
	env, name, err := config.GetEnvironment(environmentName)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nRun 'cloud login' to set up an environment", err)
	}
	if env.Token == "" {
		return nil, fmt.Errorf("environment %q has no token. Run 'cloud login' first", name)
	}

	return cloud.NewClient(ctx,
		cloud.WithBaseURL(env.URL),
		cloud.WithToken(env.Token),
	)
}
