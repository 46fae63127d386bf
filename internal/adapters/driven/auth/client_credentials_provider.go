package auth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
)

// Ensure ClientCredentialsProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ClientCredentialsProvider)(nil)

// ClientCredentialsProvider obtains tokens with the OAuth 2.0 client
// credentials grant. Tokens are cached in memory until they expire.
type ClientCredentialsProvider struct {
	config *clientcredentials.Config

	mu     sync.Mutex
	cached *oauth2.Token
}

// NewClientCredentialsProvider creates a provider for the client in settings.
func NewClientCredentialsProvider(settings domain.AuthSettings) *ClientCredentialsProvider {
	return &ClientCredentialsProvider{
		config: &clientcredentials.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			TokenURL:     settings.TokenURL,
			Scopes:       settings.Scopes,
		},
	}
}

// GetToken returns a cached token or requests a new one.
func (p *ClientCredentialsProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached.Valid() {
		return p.cached.AccessToken, nil
	}

	token, err := p.config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: client credentials: %w", domain.ErrAuthInvalid, err)
	}
	p.cached = token
	return token.AccessToken, nil
}

// AuthMethod returns AuthMethodClientCredentials.
func (p *ClientCredentialsProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodClientCredentials
}

// IsAuthenticated returns true if the client is configured.
// Credentials are only verified on the first request.
func (p *ClientCredentialsProvider) IsAuthenticated() bool {
	return p.config.ClientID != "" && p.config.TokenURL != ""
}
