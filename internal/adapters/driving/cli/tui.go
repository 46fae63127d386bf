package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [lineage-id]",
	Short: "Launch the interactive lineage table",
	Long: `Launch the interactive terminal UI for a lineage.

Select two rows to compare them. The status line shows the pending selection
and the last comparison. With --fixture the table reloads when the file
changes on disk.

Controls:
  ↑/k, ↓/j - Move between rows
  space    - Select row for comparison
  r        - Reset selection
  R        - Refetch lineage
  l        - Open another lineage
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	session, err := newSession()
	if err != nil {
		return err
	}

	lineageID := ""
	if len(args) == 1 {
		lineageID = args[0]
	}

	app, err := tui.NewApp(&tui.Ports{Session: session, Changes: changeSource}, lineageID)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
