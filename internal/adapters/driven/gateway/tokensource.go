package gateway

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
)

// providerTokenSource adapts a driven.TokenProvider to oauth2.TokenSource.
// The provider owns caching and refresh; every call is delegated.
type providerTokenSource struct {
	ctx      context.Context
	provider driven.TokenProvider
}

// Token implements oauth2.TokenSource.
func (s *providerTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.provider.GetToken(s.ctx)
	if err != nil {
		return nil, &tokenError{err: err}
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}
