// Package tui provides the interactive lineage table for the lineage CLI.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
)

// ChangeSource reports rewritten lineage data, for example a fixture file
// edited on disk. Watch blocks until ctx is cancelled.
type ChangeSource interface {
	Watch(ctx context.Context, onChange func(lineageID string)) error
}

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Session owns the table and diff selection shown by the TUI.
	Session driving.LineageSession

	// Changes triggers a reload when the data behind the session changes.
	// Optional.
	Changes ChangeSource
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
