package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajatjindal/cloud-plugin/internal/ui"
	"github.com/rajatjindal/cloud-plugin/pkg/types"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Manage deployed apps",
	Long: `Inspect apps deployed to the current environment.

Examples:
  cloud apps list                # List deployed apps
  cloud apps list -i             # Interactive selection`,
}

var appsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List deployed apps",
	RunE:    runAppsList,
}

var appsListInteractive bool

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.AddCommand(appsListCmd)

	appsListCmd.Flags().BoolVarP(&appsListInteractive, "interactive", "i", false, "Interactive selection mode")
}

func runAppsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := createCloudClient(ctx)
	if err != nil {
		return err
	}

	apps, err := client.ListApps(ctx)
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		fmt.Println("No apps found")
		return nil
	}

	if appsListInteractive {
		app, err := ui.SelectApp(apps)
		if err != nil {
			return nil // cancelled — silent exit
		}
		printAppDetails(app)
		return nil
	}

	printAppTable(apps)

	return nil
}

// printAppTable prints apps in a table format
func printAppTable(apps []types.App) {
	headers := []string{"Name", "ID", "Description"}
	widths := []int{28, 36, 36}

	var sb strings.Builder

	// Top border
	sb.WriteString(ui.BorderStyle.Render(ui.TopLeft))
	for i, w := range widths {
		sb.WriteString(ui.BorderStyle.Render(strings.Repeat(ui.Horizontal, w+2)))
		if i < len(widths)-1 {
			sb.WriteString(ui.BorderStyle.Render(ui.TopT))
		}
	}
	sb.WriteString(ui.BorderStyle.Render(ui.TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(ui.BorderStyle.Render(ui.Vertical))
	for i, h := range headers {
		cell := " " + ui.PadRight(h, widths[i]) + " "
		sb.WriteString(ui.HeaderStyle.Render(cell))
		sb.WriteString(ui.BorderStyle.Render(ui.Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(ui.BorderStyle.Render(ui.LeftT))
	for i, w := range widths {
		sb.WriteString(ui.BorderStyle.Render(strings.Repeat(ui.Horizontal, w+2)))
		if i < len(widths)-1 {
			sb.WriteString(ui.BorderStyle.Render(ui.Cross))
		}
	}
	sb.WriteString(ui.BorderStyle.Render(ui.RightT))
	sb.WriteString("\n")

	// Data rows
	for _, app := range apps {
		sb.WriteString(ui.BorderStyle.Render(ui.Vertical))

		cell := " " + ui.PadRight(app.Name, widths[0]) + " "
		sb.WriteString(ui.NameStyle.Render(cell))
		sb.WriteString(ui.BorderStyle.Render(ui.Vertical))

		cell = " " + ui.PadRight(app.ID.String(), widths[1]) + " "
		sb.WriteString(ui.IDStyle.Render(cell))
		sb.WriteString(ui.BorderStyle.Render(ui.Vertical))

		cell = " " + ui.PadRight(app.Description, widths[2]) + " "
		sb.WriteString(ui.MutedStyle.Render(cell))
		sb.WriteString(ui.BorderStyle.Render(ui.Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(ui.BorderStyle.Render(ui.BottomLeft))
	for i, w := range widths {
		sb.WriteString(ui.BorderStyle.Render(strings.Repeat(ui.Horizontal, w+2)))
		if i < len(widths)-1 {
			sb.WriteString(ui.BorderStyle.Render(ui.BottomT))
		}
	}
	sb.WriteString(ui.BorderStyle.Render(ui.BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())

	// Summary
	fmt.Printf("  %d apps\n", len(apps))
}

func printAppDetails(app *types.App) {
	fmt.Println()
	fmt.Println(ui.HeaderStyle.Render("App Details"))
	fmt.Println(ui.MutedStyle.Render("───────────────────────────────"))
	fmt.Printf("  Name: %s\n", ui.NameStyle.Render(app.Name))
	fmt.Printf("  ID:   %s\n", ui.IDStyle.Render(app.ID.String()))
	if app.Description != "" {
		fmt.Printf("  Desc: %s\n", app.Description)
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(fmt.Sprintf("  View logs with: cloud logs %s", app.Name)))
}
