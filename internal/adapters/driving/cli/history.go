package cli

import (
	"github.com/spf13/cobra"
)

var historyDataset string

var historyCmd = &cobra.Command{
	Use:   "history <lineage-id>",
	Short: "Print the version history of one dataset",
	Long:  `Lists every version of the named dataset ordered by timestamp.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyDataset, "dataset", "d", "", "dataset name")
	_ = historyCmd.MarkFlagRequired("dataset")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd, args[0])
	if err != nil {
		return err
	}

	records := session.DatasetHistory(historyDataset)
	if len(records) == 0 {
		cmd.Printf("No versions found for dataset %q.\n", historyDataset)
		return nil
	}
	cmd.Println(renderRecords(records))
	return nil
}
