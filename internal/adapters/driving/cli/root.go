// Package cli provides the lineage command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose     bool
	configDir   string
	fixturePath string
)

// Services used by commands. Set by the builder or directly in tests.
var (
	sessionFactory  driving.SessionFactory
	authService     driving.AuthService
	settingsService driving.SettingsService
	changeSource    tui.ChangeSource
)

// Options holds the global flag values needed to wire services.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means default.
	ConfigDir string

	// Fixture, when set, is a payload file or directory used instead of the
	// HTTP gateway.
	Fixture string

	// Verbose enables debug logging.
	Verbose bool
}

// Services holds the wired services for one invocation.
type Services struct {
	Sessions driving.SessionFactory
	Auth     driving.AuthService
	Settings driving.SettingsService

	// Changes is optional. When set the TUI reloads on change.
	Changes tui.ChangeSource
}

// Builder wires services from the global options. It runs once, after flag
// parsing and before the selected command.
type Builder func(opts Options) (*Services, error)

var builder Builder

// SetBuilder registers the function that wires services.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs already wired services.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	sessionFactory = s.Sessions
	authService = s.Auth
	settingsService = s.Settings
	changeSource = s.Changes
}

var rootCmd = &cobra.Command{
	Use:   "lineage",
	Short: "Inspect dataset lineage and compare versions",
	Long: `Lineage fetches the version history of a dataset family from the lineage
service, flattens it into a single table and lets you walk ancestry paths
and pick two versions to compare.

Use --fixture to read payloads from a local JSON file instead of the service.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.lineage)")
	rootCmd.PersistentFlags().StringVar(&fixturePath, "fixture", "", "read lineage payloads from a file or directory")
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if builder == nil {
		return nil
	}

	services, err := builder(Options{
		ConfigDir: configDir,
		Fixture:   fixturePath,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

// Execute runs the root command. Command output goes to stdout.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// newSession returns a fresh session from the configured factory.
func newSession() (driving.LineageSession, error) {
	if sessionFactory == nil {
		return nil, errors.New("lineage service not configured")
	}
	return sessionFactory.NewSession(), nil
}

// loadSession returns a fresh session loaded with the given lineage.
func loadSession(cmd *cobra.Command, lineageID string) (driving.LineageSession, error) {
	session, err := newSession()
	if err != nil {
		return nil, err
	}
	if err := session.Load(cmd.Context(), lineageID); err != nil {
		return nil, fmt.Errorf("failed to load lineage: %w", err)
	}
	return session, nil
}
