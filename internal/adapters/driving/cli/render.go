package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

var recordHeaders = []string{"ID", "VERSION", "DATASET", "AUTHOR", "OPERATION", "TIMESTAMP", "DERIVED FROM"}

// warningOrder is the order in which warning kinds are listed.
var warningOrder = []domain.WarningKind{
	domain.WarningMalformedGroup,
	domain.WarningMalformedRecord,
	domain.WarningDanglingReference,
	domain.WarningCyclicReference,
	domain.WarningDuplicateID,
}

// renderRecords renders version records as a borderless text table.
func renderRecords(records []domain.VersionRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		op := string(r.Operation)
		if r.UpdateDescription != "" {
			op += ": " + r.UpdateDescription
		}
		rows = append(rows, []string{
			r.ID, orDash(r.Version), r.DatasetName, r.Author, op, r.Timestamp, orDash(r.DerivedFrom),
		})
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		}).
		Headers(recordHeaders...).
		Rows(rows...).
		String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printWarnings lists warnings grouped by kind.
func printWarnings(cmd *cobra.Command, warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	cmd.Println()
	cmd.Printf("Warnings (%d):\n", len(warnings))
	for _, kind := range warningOrder {
		group := domain.FilterWarnings(warnings, kind)
		if len(group) == 0 {
			continue
		}
		cmd.Printf("  %s (%d)\n", kind, len(group))
		for _, w := range group {
			cmd.Printf("    %s\n", w)
		}
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
