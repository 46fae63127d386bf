package driven

import (
	"context"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated gateway calls.
// Implementations handle token refresh transparently; the lineage engine
// never refreshes or stores credentials itself.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns empty string for unauthenticated access.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication method in use.
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if valid authentication is available.
	// Always true for AuthMethodNone.
	IsAuthenticated() bool
}

// TokenStore persists tokens obtained through an interactive login.
type TokenStore interface {
	// Load returns the stored token, or domain.ErrNotFound if none is stored.
	Load() (*domain.OAuthToken, error)

	// Save stores a token, replacing any previous one.
	Save(token *domain.OAuthToken) error

	// Clear removes the stored token.
	Clear() error
}

// PasswordAuthenticator exchanges user credentials for a token at the
// identity provider.
type PasswordAuthenticator interface {
	// PasswordLogin performs a resource owner password grant.
	PasswordLogin(ctx context.Context, username, password string) (*domain.OAuthToken, error)
}
