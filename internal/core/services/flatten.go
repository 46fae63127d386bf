package services

import (
	"sort"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// Flatten merges every record of every group into one table ordered by id.
//
// If the same record id appears in more than one group, the later group in
// input order wins and a DuplicateId warning names both groups. Flatten keeps
// no state between calls: identical input always yields an identical table.
func Flatten(groups []domain.LineageGroup) (domain.FlattenedTable, []domain.Warning) {
	merged := make(map[string]domain.VersionRecord)
	owner := make(map[string]string)
	var warnings []domain.Warning

	for i := range groups {
		group := &groups[i]
		for _, id := range group.IDs() {
			if previous, ok := owner[id]; ok {
				warnings = append(warnings, domain.Warning{
					Kind:     domain.WarningDuplicateID,
					GroupID:  group.ID,
					RecordID: id,
					Ref:      previous,
					Detail:   "record id already present in another group",
				})
			}
			merged[id] = group.Records[id]
			owner[id] = group.ID
		}
	}

	ids := make([]string, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]domain.VersionRecord, len(ids))
	for i, id := range ids {
		rows[i] = merged[id]
	}
	return domain.FlattenedTable{Rows: rows}, warnings
}

// DatasetHistory returns every row of the table that belongs to the named
// dataset, ordered by timestamp and then id.
func DatasetHistory(table *domain.FlattenedTable, datasetName string) []domain.VersionRecord {
	if table == nil {
		return nil
	}

	var history []domain.VersionRecord
	for i := range table.Rows {
		if table.Rows[i].DatasetName == datasetName {
			history = append(history, table.Rows[i])
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		if !history[i].Time.Equal(history[j].Time) {
			return history[i].Time.Before(history[j].Time)
		}
		return history[i].ID < history[j].ID
	})
	return history
}
