package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View the lineage service and authentication settings.

Settings are stored in config.toml in the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGatewayCmd = &cobra.Command{
	Use:   "gateway <base-url>",
	Short: "Set the lineage service URL",
	Long:  `Set the scheme and host of the lineage service, for example https://lineage.example.com.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGateway,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGatewayCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Gateway]")
	baseURL := settings.Gateway.BaseURL
	if !settings.Gateway.IsConfigured() {
		baseURL = "(not set)"
	}
	cmd.Printf("  Base URL: %s\n", baseURL)
	cmd.Printf("  Path: %s\n", settings.Gateway.Path)
	cmd.Printf("  Timeout: %s\n", settings.Gateway.Timeout)
	if settings.Gateway.RatePerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", settings.Gateway.RatePerSecond)
	} else {
		cmd.Println("  Rate limit: off")
	}
	cmd.Println()

	cmd.Println("[Auth]")
	cmd.Printf("  Method: %s\n", settings.Auth.Method)
	switch settings.Auth.Method {
	case domain.AuthMethodToken:
		cmd.Printf("  Token: %s\n", maskSecret(settings.Auth.Token))
	case domain.AuthMethodPassword, domain.AuthMethodClientCredentials:
		cmd.Printf("  Token URL: %s\n", orNotSet(settings.Auth.TokenURL))
		cmd.Printf("  Client ID: %s\n", orNotSet(settings.Auth.ClientID))
		cmd.Printf("  Client Secret: %s\n", maskSecret(settings.Auth.ClientSecret))
		if len(settings.Auth.Scopes) > 0 {
			cmd.Printf("  Scopes: %s\n", strings.Join(settings.Auth.Scopes, ", "))
		}
	}
	return nil
}

func runSettingsGateway(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetGatewayURL(args[0]); err != nil {
		return fmt.Errorf("failed to set gateway URL: %w", err)
	}
	cmd.Printf("Gateway URL set to %s\n", args[0])
	return nil
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
