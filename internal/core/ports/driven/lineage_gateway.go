package driven

import (
	"context"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// LineageGateway retrieves raw lineage data from the lineage service.
//
// Implementations must not retry. Failures are returned as a
// *domain.FetchError wrapping domain.ErrFetchFailed, an authentication
// sentinel, or domain.ErrNotFound.
type LineageGateway interface {
	// FetchLineage returns the family tree payload for a lineage id.
	FetchLineage(ctx context.Context, lineageID string) (domain.RawPayload, error)
}
