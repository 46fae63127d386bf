package domain

import "strings"

// Operation identifies the kind of event a version record logs.
type Operation string

// Recognised operations.
const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationRead   Operation = "read"
	OperationDelete Operation = "delete"
)

// ParseOperation converts a raw operation description into an Operation.
// Matching is exact after trimming surrounding whitespace.
func ParseOperation(s string) (Operation, bool) {
	op := Operation(strings.TrimSpace(s))
	if op.Valid() {
		return op, true
	}
	return "", false
}

// Valid returns true if the operation is one of the recognised values.
func (o Operation) Valid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationRead, OperationDelete:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}
