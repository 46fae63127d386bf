package domain

import "sort"

// FlattenedTable is every record of every group merged into one sequence
// ordered by id under byte-wise string comparison.
type FlattenedTable struct {
	Rows []VersionRecord
}

// Len returns the number of rows.
func (t *FlattenedTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Find returns the row with the given id.
func (t *FlattenedTable) Find(id string) (VersionRecord, bool) {
	if t == nil {
		return VersionRecord{}, false
	}
	i := sort.Search(len(t.Rows), func(i int) bool { return t.Rows[i].ID >= id })
	if i < len(t.Rows) && t.Rows[i].ID == id {
		return t.Rows[i], true
	}
	return VersionRecord{}, false
}

// IDs returns the row ids in table order.
func (t *FlattenedTable) IDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, len(t.Rows))
	for i := range t.Rows {
		ids[i] = t.Rows[i].ID
	}
	return ids
}
