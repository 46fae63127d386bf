package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var childrenCmd = &cobra.Command{
	Use:   "children <lineage-id> <version-id>",
	Short: "Print the versions derived from a version",
	Long: `Lists the versions whose derived_from names the given version, oldest
first. Only the group that holds the version is searched.`,
	Args: cobra.ExactArgs(2),
	RunE: runChildren,
}

func init() {
	rootCmd.AddCommand(childrenCmd)
}

func runChildren(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd, args[0])
	if err != nil {
		return err
	}

	children, err := session.Children(args[1])
	if err != nil {
		return fmt.Errorf("failed to list children: %w", err)
	}
	if len(children) == 0 {
		cmd.Printf("Version %s has no derived versions.\n", args[1])
		return nil
	}
	cmd.Println(renderRecords(children))
	return nil
}
