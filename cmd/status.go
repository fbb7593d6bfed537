package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rajatjindal/cloud-plugin/internal/cloud"
	"github.com/rajatjindal/cloud-plugin/internal/config"
	"github.com/rajatjindal/cloud-plugin/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current environment and authentication status",
	Long: `Display the active deployment environment and verify that its token
still authenticates against the platform.

Examples:
  cloud status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Println("Current Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	env, name, err := config.GetEnvironment(environmentName)
	if err != nil {
		fmt.Println("Environment: " + ui.MutedStyle.Render("(not set)"))
		fmt.Println()
		fmt.Println("No environment configured. Log in to create one:")
		fmt.Println("  cloud login")
		return nil
	}

	fmt.Printf("Environment: %s\n", ui.HeaderStyle.Render(name))
	url := env.URL
	if url == "" {
		url = cloud.DefaultBaseURL
	}
	fmt.Printf("URL:         %s\n", url)

	if env.TokenExpiry != "" {
		if expiry, parseErr := time.Parse(time.RFC3339, env.TokenExpiry); parseErr == nil && expiry.Before(time.Now()) {
			fmt.Printf("Token:       %s\n", ui.ErrorStyle.Render("expired "+env.TokenExpiry))
		} else {
			fmt.Printf("Token:       expires %s\n", env.TokenExpiry)
		}
	}
	fmt.Println()

	fmt.Print("Auth:        ")
	if env.Token == "" {
		fmt.Println(ui.ErrorStyle.Render("✗ No token"))
		fmt.Println()
		fmt.Println("To authenticate:")
		fmt.Println("  cloud login")
		return nil
	}

	client, err := cloud.NewClient(ctx, cloud.WithBaseURL(env.URL), cloud.WithToken(env.Token))
	if err != nil {
		return err
	}

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render("✗ Not authenticated"))
		fmt.Printf("             %s\n", ui.MutedStyle.Render(err.Error()))
		fmt.Println()
		fmt.Println("To authenticate:")
		fmt.Println("  cloud login")
		return nil
	}

	fmt.Println(ui.ActiveStyle.Render("✓ Authenticated"))
	fmt.Printf("User:        %s\n", user.Email)
	fmt.Printf("User ID:     %s\n", ui.MutedStyle.Render(user.ID.String()))

	return nil
}
