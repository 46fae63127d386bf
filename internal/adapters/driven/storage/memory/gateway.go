package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
)

// Ensure LineageGateway implements the interface.
var _ driven.LineageGateway = (*LineageGateway)(nil)

// LineageGateway is an in-memory implementation of driven.LineageGateway.
// It serves payloads registered with Put and counts fetches.
type LineageGateway struct {
	mu       sync.RWMutex
	payloads map[string]domain.RawPayload
	err      error
	calls    int
}

// NewLineageGateway creates a new in-memory gateway.
func NewLineageGateway() *LineageGateway {
	return &LineageGateway{
		payloads: make(map[string]domain.RawPayload),
	}
}

// Put registers the payload returned for a lineage id.
func (g *LineageGateway) Put(lineageID string, payload domain.RawPayload) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payloads[lineageID] = payload
}

// FailWith makes every subsequent fetch fail with err. Pass nil to clear.
func (g *LineageGateway) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// Calls returns the number of fetches performed.
func (g *LineageGateway) Calls() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.calls
}

// FetchLineage returns the registered payload.
func (g *LineageGateway) FetchLineage(_ context.Context, lineageID string) (domain.RawPayload, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return nil, &domain.FetchError{LineageID: lineageID, Err: g.err}
	}
	payload, ok := g.payloads[lineageID]
	if !ok {
		return nil, &domain.FetchError{LineageID: lineageID, StatusCode: 404, Err: domain.ErrNotFound}
	}
	return payload, nil
}
