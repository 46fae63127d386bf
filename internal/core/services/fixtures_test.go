package services

import "github.com/custodia-labs/lineage-cli/internal/core/domain"

const (
	groupA = "42e581bc-0315-496b-a62b-13d33e224c0a"
	groupB = "9b2f7c61-8d4e-4f3a-b5c2-6e1d0a7f8b93"
)

func rawRecord(op, ts, parent string) domain.RawFields {
	fields := domain.RawFields{
		domain.FieldBy:          "user1",
		domain.FieldDatasetName: "random_name",
		domain.FieldOperation:   op,
		domain.FieldTimestamp:   ts,
		domain.FieldDerivedFrom: nil,
	}
	if parent != "" {
		fields[domain.FieldDerivedFrom] = parent
	}
	return fields
}

// familyGroup returns one group of familyTree.
func familyGroup(id string) domain.RawGroup {
	group, _, _ := familyTree().Group(id)
	return group
}

// familyTree is the two-group payload returned for one lineage id: a chain
// of three versions and a copy derived from the last of them.
func familyTree() domain.RawPayload {
	return domain.RawPayload{
		groupA: domain.RawGroup{
			"123abc": rawRecord("create", "2024-04-02 12:40:02", ""),
			"223abc": rawRecord("update", "2024-04-02 12:40:09", "123abc"),
			"323abc": rawRecord("update", "2024-04-02 12:41:15", "223abc"),
		},
		groupB: domain.RawGroup{
			"423abc_c": domain.RawFields{
				domain.FieldBy:          "user2",
				domain.FieldDatasetName: "random_name_copy",
				domain.FieldOperation:   "create",
				domain.FieldTimestamp:   "2024-04-02 12:45:00",
				domain.FieldDerivedFrom: "323abc",
			},
		},
	}
}
