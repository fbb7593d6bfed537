package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajatjindal/cloud-plugin/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use <environment-name>",
	Short: "Set the active deployment environment",
	Long: `Set the active deployment environment for subsequent commands.

Once set, all commands (logs, apps, status) operate against this
environment without needing --environment-name each time.

Examples:
  cloud use default
  cloud use staging`,
	Args: cobra.ExactArgs(1),
	RunE: runUse,
}

var useDeleteCmd = &cobra.Command{
	Use:     "delete <environment-name>",
	Short:   "Delete a deployment environment",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm", "remove"},
	RunE:    runUseDelete,
}

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useDeleteCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.SetCurrentEnvironment(name); err != nil {
		// If the environment doesn't exist, show what's available
		envs, current, listErr := config.ListEnvironments()
		if listErr != nil {
			return err
		}

		fmt.Printf("Environment %q not found.\n\n", name)

		if len(envs) == 0 {
			fmt.Println("No environments configured. Log in to create one:")
			fmt.Println("  cloud login")
		} else {
			fmt.Println("Available environments:")
			for _, envName := range config.SortedNames(envs) {
				marker := "  "
				if envName == current {
					marker = "* "
				}
				fmt.Printf("  %s%s\n", marker, envName)
			}
		}
		return nil
	}

	env, _, err := config.GetEnvironment(name)
	if err != nil {
		return err
	}

	fmt.Printf("Switched to environment: %s\n", name)
	if env.URL != "" {
		fmt.Printf("  URL: %s\n", env.URL)
	}

	return nil
}

func runUseDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := config.DeleteEnvironment(name); err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}

	fmt.Printf("Environment deleted: %s\n", name)
	return nil
}
