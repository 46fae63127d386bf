package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: WarningDanglingReference, GroupID: "g1", RecordID: "423abc_c", Ref: "323abc"}
	assert.Equal(t, "DanglingReference: record 423abc_c in group g1 references missing parent 323abc", w.String())

	w = Warning{Kind: WarningDuplicateID, GroupID: "g2", RecordID: "x", Ref: "g1"}
	assert.Contains(t, w.String(), "overwrites group g1")

	w = Warning{Kind: WarningMalformedRecord, GroupID: "g1", RecordID: "x", Detail: "timestamp is missing"}
	assert.Contains(t, w.String(), "timestamp is missing")
}

func TestFilterWarnings(t *testing.T) {
	warnings := []Warning{
		{Kind: WarningMalformedRecord, RecordID: "a"},
		{Kind: WarningDanglingReference, RecordID: "b"},
		{Kind: WarningMalformedRecord, RecordID: "c"},
	}

	got := FilterWarnings(warnings, WarningMalformedRecord)

	assert.Len(t, got, 2)
	assert.Empty(t, FilterWarnings(warnings, WarningDuplicateID))
}
