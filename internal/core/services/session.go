package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.LineageSession = (*Session)(nil)

// Session owns the lineage table and diff selection of one view.
//
// Parsing and flattening happen synchronously inside Load; only the gateway
// call blocks. A Session has a single writer and performs no locking: the
// caller must not call its methods from more than one goroutine at a time,
// and must not start a second Load while one is outstanding.
type Session struct {
	gateway driven.LineageGateway

	lineageID string
	groups    []domain.LineageGroup
	table     *domain.FlattenedTable
	warnings  []domain.Warning

	selection DiffSelection
}

// NewSession creates an empty session reading from the given gateway.
func NewSession(gateway driven.LineageGateway) *Session {
	return &Session{gateway: gateway}
}

// Load fetches the lineage, parses every group and flattens them.
// Groups from a previous load are replaced wholesale. If the fetch fails
// the previous table is kept and the error is returned; Load never retries.
func (s *Session) Load(ctx context.Context, lineageID string) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	lineageID = strings.TrimSpace(lineageID)
	if lineageID == "" {
		return domain.ErrInvalidInput
	}

	logger.Section("Lineage Load")
	logger.Debug("Fetching lineage %s", lineageID)

	payload, err := s.gateway.FetchLineage(ctx, lineageID)
	if err != nil {
		logger.Warn("Fetch failed, keeping previous table (%d rows): %v", s.table.Len(), err)
		return fmt.Errorf("load lineage: %w", err)
	}

	groups, warnings := ParsePayload(payload)
	table, flattenWarnings := Flatten(groups)
	warnings = append(warnings, flattenWarnings...)

	s.lineageID = lineageID
	s.groups = groups
	s.table = &table
	s.warnings = warnings

	logger.Info("Loaded %d groups, %d rows, %d warnings", len(groups), table.Len(), len(warnings))
	for _, w := range warnings {
		logger.Warn("%s", w)
	}
	return nil
}

// LineageID returns the id of the last successful load.
func (s *Session) LineageID() string {
	return s.lineageID
}

// Table returns the current flattened table, or nil before the first load.
func (s *Session) Table() *domain.FlattenedTable {
	return s.table
}

// Groups returns the groups of the last successful load.
func (s *Session) Groups() []domain.LineageGroup {
	return s.groups
}

// Warnings returns the warnings of the last successful load.
func (s *Session) Warnings() []domain.Warning {
	return s.warnings
}

// Ancestry returns the path from a record to its effective root within the
// group that supplied the record's table row.
func (s *Session) Ancestry(recordID string) ([]domain.VersionRecord, error) {
	if s.table == nil {
		return nil, domain.ErrNoTable
	}
	// Later groups win duplicate ids, so search from the end.
	for i := len(s.groups) - 1; i >= 0; i-- {
		if path := s.groups[i].Ancestry(recordID); path != nil {
			return path, nil
		}
	}
	return nil, fmt.Errorf("record %q: %w", recordID, domain.ErrNotFound)
}

// Children returns the records derived from recordID in the group that
// supplied its table row.
func (s *Session) Children(recordID string) ([]domain.VersionRecord, error) {
	if s.table == nil {
		return nil, domain.ErrNoTable
	}
	for i := len(s.groups) - 1; i >= 0; i-- {
		if _, ok := s.groups[i].Get(recordID); ok {
			return s.groups[i].Children(recordID), nil
		}
	}
	return nil, fmt.Errorf("record %q: %w", recordID, domain.ErrNotFound)
}

// Roots returns the effective roots of every group in flattening order.
func (s *Session) Roots() []domain.VersionRecord {
	var roots []domain.VersionRecord
	for i := range s.groups {
		roots = append(roots, s.groups[i].Roots()...)
	}
	return roots
}

// DatasetHistory returns every record of a dataset ordered by time.
func (s *Session) DatasetHistory(datasetName string) []domain.VersionRecord {
	return DatasetHistory(s.table, datasetName)
}

// Select adds a version id to the diff buffer.
func (s *Session) Select(versionID string) (domain.DiffRequest, bool) {
	req, ready := s.selection.Select(versionID)
	if ready {
		logger.Debug("Diff ready: %s", req.Label())
	}
	return req, ready
}

// ResetDiff empties the diff buffer.
func (s *Session) ResetDiff() {
	s.selection.Reset()
}

// DiffState returns the current selection state.
func (s *Session) DiffState() domain.DiffState {
	return s.selection.State()
}

// DiffBuffer returns the selected ids in selection order.
func (s *Session) DiffBuffer() []string {
	return s.selection.Buffer()
}

// OnDiffReady registers a callback invoked on every transition to READY.
func (s *Session) OnDiffReady(fn func(domain.DiffRequest)) {
	s.selection.OnReady(fn)
}

// Ensure SessionFactory implements the interface.
var _ driving.SessionFactory = (*SessionFactory)(nil)

// SessionFactory creates sessions that share one gateway.
type SessionFactory struct {
	gateway driven.LineageGateway
}

// NewSessionFactory creates a session factory.
func NewSessionFactory(gateway driven.LineageGateway) *SessionFactory {
	return &SessionFactory{gateway: gateway}
}

// NewSession creates an empty session.
func (f *SessionFactory) NewSession() driving.LineageSession {
	return NewSession(f.gateway)
}
