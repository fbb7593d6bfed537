package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rajatjindal/cloud-plugin/internal/cloud"
	"github.com/rajatjindal/cloud-plugin/internal/logs"
)

// deployChannelName is the channel every deployment publishes its logs to.
const deployChannelName = "spin-deploy"

var logsCmd = &cobra.Command{
	Use:   "logs <app>",
	Short: "Fetch logs for an app",
	Long: `Fetch and optionally tail logs of a deployed app.

Examples:
  cloud logs my-app                  # Last 10 lines from the past 7 days
  cloud logs my-app --follow         # Tail logs, polling every 2 seconds
  cloud logs my-app --since 30m      # Only logs from the last 30 minutes
  cloud logs my-app --tail 100       # Last 100 lines`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

var (
	logsFollow   bool
	logsTail     int
	logsInterval string
	logsSince    string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVar(&logsFollow, "follow", false, "Follow logs output")
	logsCmd.Flags().IntVar(&logsTail, "tail", 10, "Number of lines to show from the end of the logs")
	logsCmd.Flags().StringVar(&logsInterval, "interval", "2", "Interval in seconds to refresh logs (minimum 2)")
	logsCmd.Flags().StringVar(&logsSince, "since", "7d",
		`Only return logs newer than a relative duration like "300s", "5m", "4h" or "1d"`)
}

func runLogs(cmd *cobra.Command, args []string) error {
	if err := fetchAppLogs(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("%w\n\nLearn more at %s", err, developerCloudFAQ)
	}
	return nil
}

func fetchAppLogs(ctx context.Context, appName string) error {
	since, err := logs.ParseSince(logsSince)
	if err != nil {
		return err
	}

	interval, err := logs.ParseInterval(logsInterval)
	if err != nil {
		return err
	}

	client, err := createCloudClient(ctx)
	if err != nil {
		return err
	}

	appID, err := client.GetAppID(ctx, appName)
	if err != nil {
		return fmt.Errorf("app with name %q not found: %w", appName, err)
	}
	if appID == nil {
		return fmt.Errorf("app with name %q not found", appName)
	}

	channelID, err := client.GetChannelID(ctx, *appID, deployChannelName)
	if err != nil {
		return fmt.Errorf("logs channel for app with name %q not found: %w", appName, err)
	}

	return logs.NewPoller(client).Run(ctx, channelID, logs.Options{
		Follow:   logsFollow,
		Interval: interval,
		MaxLines: logsTail,
		Since:    since,
		Out:      os.Stdout,
	})
}

// compile-time check that the client satisfies the poll loop's contract
var _ logs.Fetcher = (*cloud.Client)(nil)
