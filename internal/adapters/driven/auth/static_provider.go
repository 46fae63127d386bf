package auth

import (
	"context"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider returns a fixed bearer token.
// Static tokens are never refreshed.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the configured token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodToken.
func (p *StaticTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodToken
}

// IsAuthenticated returns true if a token is configured.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}

// Anonymous is the provider for gateways that accept unauthenticated
// requests. The gateway skips the Authorization header for AuthMethodNone.
var Anonymous driven.TokenProvider = anonymous{}

type anonymous struct{}

func (anonymous) GetToken(context.Context) (string, error) { return "", nil }
func (anonymous) AuthMethod() domain.AuthMethod { return domain.AuthMethodNone }
func (anonymous) IsAuthenticated() bool { return true }
