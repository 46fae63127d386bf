package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayouts lists the accepted timestamp layouts, tried in order.
// The lineage service emits the space separated form.
var TimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// VersionRecord is one historical event for one dataset.
// It is a value type: construct it with NewVersionRecord and copy it freely.
type VersionRecord struct {
	// ID is the unique identifier of this version.
	ID string `json:"id"`

	// DatasetName is the name of the dataset the event applies to.
	DatasetName string `json:"dataset_name"`

	// Author is the user that produced the event.
	Author string `json:"by"`

	// Operation is the logged operation.
	Operation Operation `json:"operation_description"`

	// UpdateDescription is the free text of an update, sent either as its own
	// field or after a colon in the operation ("update:renamed column").
	UpdateDescription string `json:"update_description,omitempty"`

	// Version is the human version label assigned by the service ("2.1").
	// Empty when the service sends none.
	Version string `json:"version,omitempty"`

	// Timestamp is the timestamp exactly as received.
	Timestamp string `json:"timestamp"`

	// Time is Timestamp parsed with one of TimestampLayouts.
	Time time.Time `json:"-"`

	// DerivedFrom is the id of the parent version. Empty for a root.
	DerivedFrom string `json:"derived_from,omitempty"`
}

// MalformedRecordError reports why a raw record could not become a VersionRecord.
type MalformedRecordError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed record %q: %s", e.RecordID, e.Reason)
	}
	return fmt.Sprintf("malformed record %q: %s %s", e.RecordID, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedRecord).
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// NewVersionRecord validates raw fields and builds a VersionRecord.
// It fails with a *MalformedRecordError when id, operation or timestamp is
// missing, when the operation is not recognised, or when a field has the
// wrong type. The author is read from "by", falling back to "username".
func NewVersionRecord(id string, fields RawFields) (VersionRecord, error) {
	malformed := func(field, reason string) (VersionRecord, error) {
		return VersionRecord{}, &MalformedRecordError{RecordID: id, Field: field, Reason: reason}
	}

	if strings.TrimSpace(id) == "" {
		return malformed("id", "is missing")
	}
	if fields == nil {
		return malformed("", "has no fields")
	}

	opRaw, reason := stringField(fields, FieldOperation, true)
	if reason != "" {
		return malformed(FieldOperation, reason)
	}
	update, reason := stringField(fields, FieldUpdateDescription, false)
	if reason != "" {
		return malformed(FieldUpdateDescription, reason)
	}
	op, ok := ParseOperation(opRaw)
	if !ok {
		prefix, rest, found := strings.Cut(opRaw, ":")
		op, ok = ParseOperation(prefix)
		if !found || !ok {
			return malformed(FieldOperation, fmt.Sprintf("has unrecognised value %q", opRaw))
		}
		if update == "" {
			update = strings.TrimSpace(rest)
		}
	}

	ts, reason := stringField(fields, FieldTimestamp, true)
	if reason != "" {
		return malformed(FieldTimestamp, reason)
	}
	parsed, ok := parseTimestamp(ts)
	if !ok {
		return malformed(FieldTimestamp, fmt.Sprintf("has unparseable value %q", ts))
	}

	author, reason := stringField(fields, FieldBy, false)
	if reason != "" {
		return malformed(FieldBy, reason)
	}
	if author == "" {
		author, reason = stringField(fields, FieldUsername, false)
		if reason != "" {
			return malformed(FieldUsername, reason)
		}
	}
	label, reason := stringField(fields, FieldVersion, false)
	if reason != "" {
		return malformed(FieldVersion, reason)
	}
	name, reason := stringField(fields, FieldDatasetName, false)
	if reason != "" {
		return malformed(FieldDatasetName, reason)
	}
	parent, reason := stringField(fields, FieldDerivedFrom, false)
	if reason != "" {
		return malformed(FieldDerivedFrom, reason)
	}

	return VersionRecord{
		ID:                id,
		DatasetName:       name,
		Author:            author,
		Operation:         op,
		UpdateDescription: update,
		Version:           label,
		Timestamp:         ts,
		Time:              parsed,
		DerivedFrom:       parent,
	}, nil
}

// IsRoot returns true if the record has no parent.
func (r VersionRecord) IsRoot() bool {
	return r.DerivedFrom == ""
}

// stringField reads a string field, treating null as absent.
// It returns a non-empty reason when the field is unusable.
func stringField(fields RawFields, key string, required bool) (string, string) {
	val, ok := fields[key]
	if !ok || val == nil {
		if required {
			return "", "is missing"
		}
		return "", ""
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Sprintf("has type %T, want string", val)
	}
	s = strings.TrimSpace(s)
	if s == "" && required {
		return "", "is empty"
	}
	return s, ""
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range TimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
