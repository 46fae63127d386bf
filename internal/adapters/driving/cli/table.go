package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

var tableJSON bool

var tableCmd = &cobra.Command{
	Use:   "table <lineage-id>",
	Short: "Print the flattened version table",
	Long: `Fetches a lineage and prints every version of every group as one table,
ordered by version id. Records that could not be parsed and references that
could not be resolved are listed as warnings after the table.`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "output the table as JSON")
	rootCmd.AddCommand(tableCmd)
}

// tableOutput is the JSON shape of the table command.
type tableOutput struct {
	LineageID string                 `json:"lineage_id"`
	Rows      []domain.VersionRecord `json:"rows"`
	Warnings  []domain.Warning       `json:"warnings"`
}

func runTable(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd, args[0])
	if err != nil {
		return err
	}

	rows := session.Table().Rows
	if tableJSON {
		return printJSON(cmd, tableOutput{
			LineageID: session.LineageID(),
			Rows:      nonNil(rows),
			Warnings:  nonNil(session.Warnings()),
		})
	}

	if len(rows) == 0 {
		cmd.Println("No versions found.")
	} else {
		cmd.Println(renderRecords(rows))
	}
	printWarnings(cmd, session.Warnings())
	return nil
}

// nonNil keeps empty slices as [] in JSON output.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
