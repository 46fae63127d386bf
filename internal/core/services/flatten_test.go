package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

func TestFlatten_FamilyTree(t *testing.T) {
	groups, _ := ParsePayload(familyTree())

	table, warnings := Flatten(groups)

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"123abc", "223abc", "323abc", "423abc_c"}, table.IDs())

	copyRow, ok := table.Find("423abc_c")
	require.True(t, ok)
	assert.Equal(t, "323abc", copyRow.DerivedFrom)
	assert.Equal(t, "random_name_copy", copyRow.DatasetName)
}

func TestFlatten_Empty(t *testing.T) {
	table, warnings := Flatten(nil)

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, warnings)
}

func TestFlatten_Idempotent(t *testing.T) {
	groups, _ := ParsePayload(familyTree())

	first, _ := Flatten(groups)
	second, _ := Flatten(groups)

	assert.Equal(t, first, second)
}

func TestFlatten_ByteWiseOrder(t *testing.T) {
	group, _ := ParseGroup("g", domain.RawGroup{
		"b":  rawRecord("create", "2024-04-02 12:40:02", ""),
		"B":  rawRecord("create", "2024-04-02 12:40:02", ""),
		"a1": rawRecord("create", "2024-04-02 12:40:02", ""),
		"a":  rawRecord("create", "2024-04-02 12:40:02", ""),
	})

	table, _ := Flatten([]domain.LineageGroup{group})

	assert.Equal(t, []string{"B", "a", "a1", "b"}, table.IDs())
}

func TestFlatten_DuplicateIDLastWriteWins(t *testing.T) {
	first, _ := ParseGroup("g1", domain.RawGroup{
		"dup": rawRecord("create", "2024-04-02 12:40:02", ""),
	})
	second, _ := ParseGroup("g2", domain.RawGroup{
		"dup": rawRecord("delete", "2024-04-03 09:00:00", ""),
	})

	table, warnings := Flatten([]domain.LineageGroup{first, second})

	require.Equal(t, 1, table.Len())
	row, _ := table.Find("dup")
	assert.Equal(t, domain.OperationDelete, row.Operation)

	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningDuplicateID, warnings[0].Kind)
	assert.Equal(t, "g2", warnings[0].GroupID)
	assert.Equal(t, "g1", warnings[0].Ref)
}

func TestDatasetHistory(t *testing.T) {
	group, _ := ParseGroup("g", domain.RawGroup{
		"v3": rawRecord("update", "2024-04-02 12:41:00", "v1"),
		"v1": rawRecord("create", "2024-04-02 12:40:00", ""),
		"v2": rawRecord("update", "2024-04-02 12:41:00", "v1"),
		"other": domain.RawFields{
			domain.FieldDatasetName: "unrelated",
			domain.FieldOperation:   "create",
			domain.FieldTimestamp:   "2024-04-02 12:39:00",
		},
	})
	table, _ := Flatten([]domain.LineageGroup{group})

	history := DatasetHistory(&table, "random_name")

	ids := make([]string, len(history))
	for i, r := range history {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids)
	assert.Empty(t, DatasetHistory(&table, "missing"))
	assert.Nil(t, DatasetHistory(nil, "random_name"))
}
