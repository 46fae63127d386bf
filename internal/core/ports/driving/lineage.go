package driving

import (
	"context"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// LineageService loads lineage data and exposes the flattened view of the
// most recent successful load.
type LineageService interface {
	// Load fetches, parses and flattens the lineage with the given id.
	// On failure the previously loaded table is kept and the error returned.
	Load(ctx context.Context, lineageID string) error

	// LineageID returns the id of the last successful load.
	LineageID() string

	// Table returns the current flattened table, or nil before the first
	// successful load.
	Table() *domain.FlattenedTable

	// Groups returns the parsed groups of the last successful load in
	// flattening order.
	Groups() []domain.LineageGroup

	// Warnings returns the warnings produced by the last successful load.
	Warnings() []domain.Warning

	// Ancestry returns the path from a record to its effective root.
	Ancestry(recordID string) ([]domain.VersionRecord, error)

	// Children returns the versions derived directly from a record, ordered
	// by time.
	Children(recordID string) ([]domain.VersionRecord, error)

	// Roots returns the effective root of every chain, group by group.
	Roots() []domain.VersionRecord

	// DatasetHistory returns every record of a dataset ordered by time.
	DatasetHistory(datasetName string) []domain.VersionRecord
}

// DiffSelector tracks the versions chosen for comparison.
type DiffSelector interface {
	// Select adds a version id to the diff buffer. When the buffer becomes
	// full it returns the diff request and true.
	Select(versionID string) (domain.DiffRequest, bool)

	// ResetDiff empties the diff buffer.
	ResetDiff()

	// DiffState returns the current selection state.
	DiffState() domain.DiffState

	// DiffBuffer returns a copy of the selected ids in selection order.
	DiffBuffer() []string

	// OnDiffReady registers a callback invoked on every transition to READY.
	OnDiffReady(fn func(domain.DiffRequest))
}

// LineageSession is one view session: a loaded table and its diff selection.
// A session has a single writer; callers must not use it from more than one
// goroutine at a time.
type LineageSession interface {
	LineageService
	DiffSelector
}

// SessionFactory creates independent lineage sessions.
type SessionFactory interface {
	NewSession() LineageSession
}
