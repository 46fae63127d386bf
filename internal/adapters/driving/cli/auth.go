package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage lineage service credentials",
	Long: `Log in to the identity provider used by the lineage service, log out, or
show the current authentication state.

The method is chosen with the auth.method setting:
  none               - no Authorization header
  token              - static bearer token (auth.token or $LINEAGE_TOKEN)
  password           - username and password login with token refresh
  client_credentials - OAuth 2.0 client credentials grant`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with a username and password",
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored login token",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE:  runAuthStatus,
}

var authLoginUsername string

func init() {
	authLoginCmd.Flags().StringVarP(&authLoginUsername, "username", "u", "", "username (prompted if not set)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	username := authLoginUsername
	if username == "" {
		cmd.Print("Username: ")
		username = readLine(reader)
	}
	cmd.Print("Password: ")
	password := readPassword(cmd.InOrStdin(), reader)
	cmd.Println()

	if err := authService.Login(cmd.Context(), username, password); err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			return errors.New("password login is not configured; set auth.method = \"password\" and auth.token_url")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s\n", username)
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}
	if err := authService.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	cmd.Println("Logged out")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	status := authService.Status()
	cmd.Printf("Method: %s\n", status.Method)

	state := "authenticated"
	if !status.Authenticated {
		state = "not authenticated"
	}
	cmd.Printf("Status: %s\n", state)

	if !status.Expiry.IsZero() {
		expiry := status.Expiry.Local().Format(time.RFC1123)
		if time.Now().After(status.Expiry) {
			cmd.Printf("Token expired: %s\n", expiry)
		} else {
			cmd.Printf("Token expires: %s\n", expiry)
		}
	}
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads without echo when in is a terminal and falls back to a
// plain line read otherwise.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(reader)
}
