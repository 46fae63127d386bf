package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <lineage-id> <version-id>",
	Short: "Print the ancestry of a version",
	Long: `Walks derived_from links from a version up to its root and prints the
versions on the way, starting with the given one. The walk stops early at a
reference outside the group or at the first repeated version of a loop.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd, args[0])
	if err != nil {
		return err
	}

	path, err := session.Ancestry(args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve ancestry: %w", err)
	}
	cmd.Println(renderRecords(path))
	return nil
}
