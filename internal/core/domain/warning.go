package domain

import "fmt"

// WarningKind classifies a recoverable anomaly found while parsing or
// flattening lineage data.
type WarningKind string

const (
	// WarningMalformedRecord means a record was dropped because it could not
	// be constructed.
	WarningMalformedRecord WarningKind = "MalformedRecord"

	// WarningMalformedGroup means a whole group was dropped because its value
	// is not an object of records.
	WarningMalformedGroup WarningKind = "MalformedGroup"

	// WarningDanglingReference means a record names a parent outside its
	// group. The record is kept.
	WarningDanglingReference WarningKind = "DanglingReference"

	// WarningDuplicateID means the same record id appeared in more than one
	// group. The later group wins.
	WarningDuplicateID WarningKind = "DuplicateId"

	// WarningCyclicReference means derived_from links inside a group loop.
	WarningCyclicReference WarningKind = "CyclicReference"
)

// Warning is a structured, recoverable anomaly returned alongside a result.
type Warning struct {
	Kind WarningKind `json:"kind"`

	// GroupID is the group the anomaly was found in.
	GroupID string `json:"group_id,omitempty"`

	// RecordID is the record concerned, if any.
	RecordID string `json:"record_id,omitempty"`

	// Ref is the related id: the missing parent for DanglingReference, the
	// overwritten group for DuplicateId.
	Ref string `json:"ref,omitempty"`

	// Detail is a human readable explanation.
	Detail string `json:"detail,omitempty"`
}

// String formats the warning for display.
func (w Warning) String() string {
	switch w.Kind {
	case WarningDanglingReference:
		return fmt.Sprintf("%s: record %s in group %s references missing parent %s",
			w.Kind, w.RecordID, w.GroupID, w.Ref)
	case WarningDuplicateID:
		return fmt.Sprintf("%s: record %s from group %s overwrites group %s",
			w.Kind, w.RecordID, w.GroupID, w.Ref)
	case WarningMalformedGroup:
		return fmt.Sprintf("%s: group %s: %s", w.Kind, w.GroupID, w.Detail)
	default:
		return fmt.Sprintf("%s: record %s in group %s: %s", w.Kind, w.RecordID, w.GroupID, w.Detail)
	}
}

// FilterWarnings returns the warnings of the given kind.
func FilterWarnings(warnings []Warning, kind WarningKind) []Warning {
	var out []Warning
	for _, w := range warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
