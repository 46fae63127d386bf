package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// tokenError marks a failure to obtain a credential inside the transport,
// so it can be told apart from network failures after client.Do.
type tokenError struct {
	err error
}

func (e *tokenError) Error() string {
	return fmt.Sprintf("get token: %v", e.err)
}

func (e *tokenError) Unwrap() error {
	return e.err
}

// errorForStatus maps a non-200 status to a domain sentinel. The lineage
// service answers an unknown lineage id with 412 Precondition Failed.
func errorForStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthInvalid
	case http.StatusNotFound, http.StatusPreconditionFailed:
		return domain.ErrNotFound
	default:
		return domain.ErrFetchFailed
	}
}

// classifyTransportError wraps an error returned by the HTTP client.
func classifyTransportError(err error) error {
	var tokenErr *tokenError
	if errors.As(err, &tokenErr) {
		if domain.IsAuthError(tokenErr.err) {
			return tokenErr
		}
		return fmt.Errorf("%w: %w", domain.ErrAuthRequired, tokenErr)
	}
	return fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
}
