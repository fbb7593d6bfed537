package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rajatjindal/cloud-plugin/internal/cloud"
	"github.com/rajatjindal/cloud-plugin/internal/config"
	"github.com/rajatjindal/cloud-plugin/internal/ui"
)

// loginTimeout bounds how long we wait for the user to approve the device
// code before giving up.
const loginTimeout = 15 * time.Minute

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the cloud platform",
	Long: `Authorize this device against the cloud platform.

Prints a verification URL and a one-time code; once the code is approved in
the browser, the issued token is saved into the selected environment.

Examples:
  cloud login
  cloud login --url https://cloud.example.com
  cloud login --environment-name staging`,
	RunE: runLogin,
}

var loginURL string

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginURL, "url", "", "Platform API URL (defaults to "+cloud.DefaultBaseURL+")")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	envName := environmentName
	if envName == "" {
		envName = config.DefaultEnvironment
	}

	// Unauthenticated client — we are here to obtain the token.
	client, err := cloud.NewClient(ctx, cloud.WithBaseURL(loginURL))
	if err != nil {
		return err
	}

	code, err := client.CreateDeviceCode(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Open the following URL in your browser and enter the code to authorize this device:")
	fmt.Println()
	fmt.Printf("  %s\n", ui.NameStyle.Render(code.VerificationURL))
	fmt.Printf("  Code: %s\n", ui.HeaderStyle.Render(code.UserCode))
	fmt.Println()
	fmt.Print("Waiting for authorization...")

	pollInterval := time.Duration(code.PollIntervalSecs) * time.Second
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}

	deadline := time.Now().Add(loginTimeout)
	for {
		if time.Now().After(deadline) {
			fmt.Println()
			return fmt.Errorf("timed out waiting for device authorization")
		}

		time.Sleep(pollInterval)

		token, err := client.CreateAccessToken(ctx, code.DeviceCode)
		if errors.Is(err, cloud.ErrAuthPending) {
			fmt.Print(".")
			continue
		}
		if err != nil {
			fmt.Println()
			return err
		}

		fmt.Println()
		fmt.Println(ui.ActiveStyle.Render("✓ Device authorized"))

		err = config.SetEnvironment(envName, &config.Environment{
			URL:         client.BaseURL(),
			Token:       token.Token,
			TokenExpiry: token.Expiration,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Token saved to environment %q\n", envName)
		return nil
	}
}
