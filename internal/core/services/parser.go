package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// ParseGroup turns one raw group into a LineageGroup.
//
// Records that fail validation are omitted and reported as MalformedRecord
// warnings; the rest of the group is still returned. After construction the
// forest invariant is checked: a derived_from naming an id outside the group
// yields a DanglingReference warning and a loop of derived_from links yields
// a CyclicReference warning. Such records are kept.
func ParseGroup(groupID string, raw domain.RawGroup) (domain.LineageGroup, []domain.Warning) {
	group := domain.LineageGroup{
		ID:      groupID,
		Records: make(map[string]domain.VersionRecord, len(raw)),
	}
	var warnings []domain.Warning

	for _, id := range sortedKeys(raw) {
		record, err := newRecord(id, raw)
		if err != nil {
			warnings = append(warnings, domain.Warning{
				Kind:     domain.WarningMalformedRecord,
				GroupID:  groupID,
				RecordID: id,
				Detail:   malformedDetail(err),
			})
			continue
		}
		group.Records[id] = record
	}

	warnings = append(warnings, danglingReferences(&group)...)
	warnings = append(warnings, cyclicReferences(&group)...)
	return group, warnings
}

// ParsePayload parses every group of a payload. Groups are returned in
// lexicographic order of their ids, which is the input order Flatten uses
// to resolve duplicate record ids. A group that is not an object is dropped
// with a MalformedGroup warning.
func ParsePayload(payload domain.RawPayload) ([]domain.LineageGroup, []domain.Warning) {
	groups := make([]domain.LineageGroup, 0, len(payload))
	var warnings []domain.Warning

	for _, groupID := range sortedKeys(payload) {
		raw, kind, ok := payload.Group(groupID)
		if !ok {
			warnings = append(warnings, domain.Warning{
				Kind:    domain.WarningMalformedGroup,
				GroupID: groupID,
				Detail:  "group is a JSON " + kind + ", want object",
			})
			continue
		}
		group, groupWarnings := ParseGroup(groupID, raw)
		groups = append(groups, group)
		warnings = append(warnings, groupWarnings...)
	}
	return groups, warnings
}

// newRecord builds record id of raw, rejecting values that are not objects.
func newRecord(id string, raw domain.RawGroup) (domain.VersionRecord, error) {
	fields, kind, ok := raw.Fields(id)
	if !ok {
		return domain.VersionRecord{}, &domain.MalformedRecordError{
			RecordID: id,
			Reason:   "record is a JSON " + kind + ", want object",
		}
	}
	return domain.NewVersionRecord(id, fields)
}

func danglingReferences(group *domain.LineageGroup) []domain.Warning {
	var warnings []domain.Warning
	for _, id := range group.IDs() {
		record := group.Records[id]
		if record.IsRoot() {
			continue
		}
		if _, ok := group.Records[record.DerivedFrom]; !ok {
			warnings = append(warnings, domain.Warning{
				Kind:     domain.WarningDanglingReference,
				GroupID:  group.ID,
				RecordID: id,
				Ref:      record.DerivedFrom,
				Detail:   "parent is not part of this group",
			})
		}
	}
	return warnings
}

// cyclicReferences reports each derived_from loop once, keyed by the first
// record on the loop in id order.
func cyclicReferences(group *domain.LineageGroup) []domain.Warning {
	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[string]int, len(group.Records))
	var warnings []domain.Warning

	for _, id := range group.IDs() {
		var path []string
		current := id
		for state[current] == unvisited {
			state[current] = visiting
			path = append(path, current)
			record := group.Records[current]
			if group.IsEffectiveRoot(record) {
				current = ""
				break
			}
			current = record.DerivedFrom
		}

		if current != "" && state[current] == visiting {
			loop := loopFrom(path, current)
			warnings = append(warnings, domain.Warning{
				Kind:     domain.WarningCyclicReference,
				GroupID:  group.ID,
				RecordID: loop[0],
				Ref:      group.Records[loop[0]].DerivedFrom,
				Detail:   "derived_from loop: " + strings.Join(loop, " -> "),
			})
		}

		for _, p := range path {
			state[p] = done
		}
	}
	return warnings
}

// loopFrom returns the loop portion of path starting at start, rotated so
// the smallest id comes first.
func loopFrom(path []string, start string) []string {
	i := 0
	for path[i] != start {
		i++
	}
	loop := append([]string(nil), path[i:]...)

	minIdx := 0
	for j := range loop {
		if loop[j] < loop[minIdx] {
			minIdx = j
		}
	}
	rotated := make([]string, 0, len(loop))
	rotated = append(rotated, loop[minIdx:]...)
	return append(rotated, loop[:minIdx]...)
}

func malformedDetail(err error) string {
	var malformed *domain.MalformedRecordError
	if errors.As(err, &malformed) {
		if malformed.Field == "" {
			return malformed.Reason
		}
		return malformed.Field + " " + malformed.Reason
	}
	return err.Error()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
