package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajatjindal/cloud-plugin/internal/config"
	"github.com/rajatjindal/cloud-plugin/internal/ui"
)

var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"envs"},
	Short:   "List configured deployment environments",
	Long: `List all configured deployment environments.

The current active environment is marked with an asterisk (*).

Examples:
  cloud environments
  cloud envs`,
	RunE: runEnvironments,
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}

func runEnvironments(cmd *cobra.Command, args []string) error {
	envs, current, err := config.ListEnvironments()
	if err != nil {
		return fmt.Errorf("failed to list environments: %w", err)
	}

	if len(envs) == 0 {
		fmt.Println("No environments configured.")
		fmt.Println()
		fmt.Println("Log in to create one:")
		fmt.Println("  cloud login")
		return nil
	}

	// Print header
	fmt.Println()
	fmt.Printf("  %-20s  %-40s  %-12s\n",
		ui.HeaderStyle.Render("ENVIRONMENT"),
		ui.HeaderStyle.Render("URL"),
		ui.HeaderStyle.Render("TOKEN"))
	fmt.Println(ui.MutedStyle.Render("  " + strings.Repeat("─", 76)))

	for _, name := range config.SortedNames(envs) {
		env := envs[name]

		marker := "  "
		if name == current {
			marker = "* "
		}

		nameStr := name
		if name == current {
			nameStr = ui.ActiveStyle.Render(name)
		}

		tokenStr := ui.MutedStyle.Render("-")
		if env.Token != "" {
			tokenStr = "set"
		}

		fmt.Printf("%s%-20s  %-40s  %-12s\n", marker, nameStr, env.URL, tokenStr)
	}

	fmt.Println()
	fmt.Printf("  %d environments configured", len(envs))
	if current != "" {
		fmt.Printf(", current: %s", ui.ActiveStyle.Render(current))
	}
	fmt.Println()

	return nil
}
