// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// LineageLoaded reports the end of a lineage load.
// Err is nil on success; on failure the session kept its previous table.
type LineageLoaded struct {
	LineageID string
	Err       error
}

// FixtureChanged reports that a local fixture was rewritten.
// An empty LineageID means every lineage is affected.
type FixtureChanged struct {
	LineageID string
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTable is the lineage table.
	ViewTable ViewType = iota
	// ViewPrompt asks for a lineage id to open.
	ViewPrompt
	// ViewHelp lists every keybinding.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTable:
		return "table"
	case ViewPrompt:
		return "prompt"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
