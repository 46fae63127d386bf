package domain

import "fmt"

// DiffState is the state of a diff selection buffer.
type DiffState int

const (
	// DiffEmpty means no version is selected.
	DiffEmpty DiffState = iota
	// DiffOneSelected means one version is waiting for a partner.
	DiffOneSelected
	// DiffReady means two versions are selected and a diff can be computed.
	DiffReady
)

// String implements fmt.Stringer.
func (s DiffState) String() string {
	switch s {
	case DiffEmpty:
		return "EMPTY"
	case DiffOneSelected:
		return "ONE_SELECTED"
	case DiffReady:
		return "READY"
	default:
		return fmt.Sprintf("DiffState(%d)", int(s))
	}
}

// DiffRequest identifies two versions to compare, in selection order.
// FirstID is conventionally the "before" side.
type DiffRequest struct {
	FirstID  string `json:"first_id"`
	SecondID string `json:"second_id"`
}

// Label returns the summary label handed to diff renderers.
func (r DiffRequest) Label() string {
	return fmt.Sprintf("Value 1:%s Value 2:%s", r.FirstID, r.SecondID)
}
