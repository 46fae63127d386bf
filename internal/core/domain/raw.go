package domain

import "fmt"

// Field names used by the lineage service in raw payloads.
const (
	FieldBy                = "by"
	FieldUsername          = "username"
	FieldDatasetName       = "dataset_name"
	FieldOperation         = "operation_description"
	FieldUpdateDescription = "update_description"
	FieldVersion           = "version"
	FieldTimestamp         = "timestamp"
	FieldDerivedFrom       = "derived_from"
)

// RawFields is the loosely-typed field bag received for one record.
// Values are whatever encoding/json produced; nothing about their presence
// or type is trusted until a VersionRecord is constructed from them.
type RawFields map[string]any

// RawGroup maps record ids to raw records for one lineage group. A record is
// expected to be a JSON object but may decode to anything; use Fields.
type RawGroup map[string]any

// RawPayload is the lineage response as received: group id to raw group.
// A group is expected to be a JSON object; use Group.
type RawPayload map[string]any

// Fields returns record id as RawFields. It returns false with the JSON kind
// of the value when the record is not an object. A null record yields nil
// fields.
func (g RawGroup) Fields(id string) (RawFields, string, bool) {
	switch v := g[id].(type) {
	case RawFields:
		return v, "", true
	case map[string]any:
		return RawFields(v), "", true
	case nil:
		return nil, "", true
	default:
		return nil, jsonKind(v), false
	}
}

// Group returns group id as a RawGroup. It returns false with the JSON kind of
// the value when the group is not an object.
func (p RawPayload) Group(id string) (RawGroup, string, bool) {
	switch v := p[id].(type) {
	case RawGroup:
		return v, "", true
	case map[string]any:
		return RawGroup(v), "", true
	default:
		return nil, jsonKind(v), false
	}
}

// jsonKind names the JSON type of a decoded value.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any, RawFields, RawGroup:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
