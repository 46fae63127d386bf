package domain

import "sort"

// LineageGroup is one independent chain of versions sharing a common root.
// Records are keyed by id. Within a group the DerivedFrom relation forms a
// forest; a DerivedFrom naming an id outside the group is a dangling
// reference and the record is treated as an effective root.
type LineageGroup struct {
	// ID is the group identifier (a UUID in well-formed payloads).
	ID string

	// Records maps record id to record.
	Records map[string]VersionRecord
}

// Len returns the number of records in the group.
func (g *LineageGroup) Len() int {
	return len(g.Records)
}

// Get returns the record with the given id.
func (g *LineageGroup) Get(id string) (VersionRecord, bool) {
	r, ok := g.Records[id]
	return r, ok
}

// IDs returns the record ids in lexicographic order.
func (g *LineageGroup) IDs() []string {
	ids := make([]string, 0, len(g.Records))
	for id := range g.Records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsEffectiveRoot returns true if the record has no parent, or its parent
// is not part of this group.
func (g *LineageGroup) IsEffectiveRoot(r VersionRecord) bool {
	if r.IsRoot() {
		return true
	}
	_, ok := g.Records[r.DerivedFrom]
	return !ok
}

// Roots returns the effective roots of the group ordered by id.
func (g *LineageGroup) Roots() []VersionRecord {
	var roots []VersionRecord
	for _, id := range g.IDs() {
		r := g.Records[id]
		if g.IsEffectiveRoot(r) {
			roots = append(roots, r)
		}
	}
	return roots
}

// Children returns the records derived directly from id, ordered by
// timestamp and then id.
func (g *LineageGroup) Children(id string) []VersionRecord {
	var children []VersionRecord
	for _, r := range g.Records {
		if r.DerivedFrom == id && r.ID != id {
			children = append(children, r)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		if !children[i].Time.Equal(children[j].Time) {
			return children[i].Time.Before(children[j].Time)
		}
		return children[i].ID < children[j].ID
	})
	return children
}

// Ancestry returns the path from the record with the given id up to its
// effective root, starting with the record itself. The walk stops at a
// dangling reference or at the first record it has already visited.
// Returns nil if id is not in the group.
func (g *LineageGroup) Ancestry(id string) []VersionRecord {
	current, ok := g.Records[id]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var path []VersionRecord
	for {
		seen[current.ID] = true
		path = append(path, current)
		if current.IsRoot() {
			return path
		}
		parent, ok := g.Records[current.DerivedFrom]
		if !ok || seen[parent.ID] {
			return path
		}
		current = parent
	}
}
