package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

var diffJSON bool

var diffCmd = &cobra.Command{
	Use:   "diff <lineage-id> <first-id> <second-id>",
	Short: "Select two versions for comparison",
	Long: `Loads a lineage, selects the two versions in order and prints the
resulting comparison request. The first version is the "before" side.

Versions that are not in the table are reported as warnings; the request is
still produced.`,
	Args: cobra.ExactArgs(3),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "output the request as JSON")
	rootCmd.AddCommand(diffCmd)
}

// diffOutput is the JSON shape of the diff command.
type diffOutput struct {
	Label   string                `json:"label"`
	Request domain.DiffRequest    `json:"request"`
	First   *domain.VersionRecord `json:"first,omitempty"`
	Second  *domain.VersionRecord `json:"second,omitempty"`
}

func runDiff(cmd *cobra.Command, args []string) error {
	session, err := loadSession(cmd, args[0])
	if err != nil {
		return err
	}

	tbl := session.Table()
	out := diffOutput{}
	for i, id := range args[1:] {
		record, ok := tbl.Find(id)
		if !ok {
			cmd.PrintErrf("warning: version %s is not in the table\n", id)
			continue
		}
		if i == 0 {
			out.First = &record
		} else {
			out.Second = &record
		}
	}

	session.Select(args[1])
	req, ready := session.Select(args[2])
	if !ready {
		return errors.New("version ids must not be empty")
	}
	out.Request = req
	out.Label = req.Label()

	if diffJSON {
		return printJSON(cmd, out)
	}

	cmd.Println(out.Label)
	var records []domain.VersionRecord
	for _, r := range []*domain.VersionRecord{out.First, out.Second} {
		if r != nil {
			records = append(records, *r)
		}
	}
	if len(records) > 0 {
		cmd.Println(renderRecords(records))
	}
	return nil
}
