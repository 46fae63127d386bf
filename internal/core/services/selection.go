package services

import (
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// DiffSelection holds at most two version ids chosen for comparison.
//
//	EMPTY        --Select(a)--> ONE_SELECTED [a]
//	ONE_SELECTED --Select(b)--> READY        [a b]  emits (a, b)
//	READY        --Select(c)--> ONE_SELECTED [c]
//
// A third selection discards the pair instead of sliding the window.
// Reset returns to EMPTY from any state.
// The zero value is an empty selection.
type DiffSelection struct {
	buffer    []string
	listeners []func(domain.DiffRequest)
}

// NewDiffSelection creates an empty diff selection.
func NewDiffSelection() *DiffSelection {
	return &DiffSelection{}
}

// Select adds a version id. It returns the diff request and true when the
// selection becomes READY. An empty id is ignored.
func (d *DiffSelection) Select(versionID string) (domain.DiffRequest, bool) {
	if versionID == "" {
		return domain.DiffRequest{}, false
	}

	switch d.State() {
	case domain.DiffEmpty, domain.DiffReady:
		d.buffer = []string{versionID}
		return domain.DiffRequest{}, false
	default:
		d.buffer = append(d.buffer, versionID)
	}

	req := domain.DiffRequest{FirstID: d.buffer[0], SecondID: d.buffer[1]}
	for _, fn := range d.listeners {
		fn(req)
	}
	return req, true
}

// Reset empties the buffer, discarding any pending diff.
func (d *DiffSelection) Reset() {
	d.buffer = nil
}

// State returns the current state.
func (d *DiffSelection) State() domain.DiffState {
	switch len(d.buffer) {
	case 0:
		return domain.DiffEmpty
	case 1:
		return domain.DiffOneSelected
	default:
		return domain.DiffReady
	}
}

// Buffer returns a copy of the selected ids in selection order.
func (d *DiffSelection) Buffer() []string {
	return append([]string{}, d.buffer...)
}

// Pending returns the diff request if the selection is READY.
func (d *DiffSelection) Pending() (domain.DiffRequest, bool) {
	if d.State() != domain.DiffReady {
		return domain.DiffRequest{}, false
	}
	return domain.DiffRequest{FirstID: d.buffer[0], SecondID: d.buffer[1]}, true
}

// OnReady registers a callback invoked synchronously on every transition
// to READY.
func (d *DiffSelection) OnReady(fn func(domain.DiffRequest)) {
	if fn != nil {
		d.listeners = append(d.listeners, fn)
	}
}
