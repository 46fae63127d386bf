// Package diffpanel renders the most recent diff pair next to the table.
//
// The panel only shows the two selected records side by side. Computing the
// content difference between two dataset versions belongs to an external
// renderer that consumes the id pair.
package diffpanel

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// View shows a diff request and the metadata of both versions.
type View struct {
	styles  *styles.Styles
	request *domain.DiffRequest
	first   *domain.VersionRecord
	second  *domain.VersionRecord
	width   int
}

// NewView creates an empty diff panel.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80}
}

// SetDiff sets the pair to display. Records absent from the table are nil.
func (v *View) SetDiff(req domain.DiffRequest, first, second *domain.VersionRecord) {
	v.request = &req
	v.first = first
	v.second = second
}

// Clear removes the displayed pair.
func (v *View) Clear() {
	v.request = nil
	v.first = nil
	v.second = nil
}

// Request returns the displayed pair.
func (v *View) Request() (domain.DiffRequest, bool) {
	if v.request == nil {
		return domain.DiffRequest{}, false
	}
	return *v.request, true
}

// SetDimensions sets the available width.
func (v *View) SetDimensions(width, _ int) {
	v.width = width
}

// View renders the panel, or nothing when no pair is set.
func (v *View) View() string {
	if v.request == nil {
		return ""
	}

	lines := []string{v.styles.Title.Render(v.request.Label())}
	fields := []struct {
		name string
		get  func(*domain.VersionRecord) string
	}{
		{"dataset", func(r *domain.VersionRecord) string { return r.DatasetName }},
		{"by", func(r *domain.VersionRecord) string { return r.Author }},
		{"operation", func(r *domain.VersionRecord) string { return r.Operation.String() }},
		{"timestamp", func(r *domain.VersionRecord) string { return r.Timestamp }},
		{"derived from", func(r *domain.VersionRecord) string { return r.DerivedFrom }},
	}
	for _, f := range fields {
		a, b := value(v.first, f.get), value(v.second, f.get)
		line := fmt.Sprintf("%-13s %-24s %s", f.name, a, b)
		if a != b {
			line = v.styles.Marked.Render(line)
		}
		lines = append(lines, line)
	}

	panelWidth := v.width - 4
	if panelWidth < 20 {
		panelWidth = 20
	}
	return v.styles.Panel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

func value(r *domain.VersionRecord, get func(*domain.VersionRecord) string) string {
	if r == nil {
		return "(not in table)"
	}
	return get(r)
}
