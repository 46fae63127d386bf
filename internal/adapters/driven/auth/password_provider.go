package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

// Ensure PasswordProvider implements the interfaces.
var (
	_ driven.TokenProvider         = (*PasswordProvider)(nil)
	_ driven.PasswordAuthenticator = (*PasswordProvider)(nil)
)

// PasswordProvider obtains tokens through the resource owner password grant
// and refreshes them with the stored refresh token.
type PasswordProvider struct {
	config *oauth2.Config
	store  driven.TokenStore

	mu     sync.Mutex
	cached *oauth2.Token
}

// NewPasswordProvider creates a provider for the identity provider in settings.
func NewPasswordProvider(settings domain.AuthSettings, store driven.TokenStore) *PasswordProvider {
	return &PasswordProvider{
		config: &oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: settings.TokenURL},
			Scopes:       settings.Scopes,
		},
		store: store,
	}
}

// PasswordLogin exchanges a username and password for a token.
// The caller is responsible for storing the result.
func (p *PasswordProvider) PasswordLogin(ctx context.Context, username, password string) (*domain.OAuthToken, error) {
	if p.config.Endpoint.TokenURL == "" {
		return nil, fmt.Errorf("%w: auth.token_url is not configured", domain.ErrInvalidInput)
	}

	token, err := p.config.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
	}

	p.mu.Lock()
	p.cached = token
	p.mu.Unlock()

	return toDomainToken(token), nil
}

// GetToken returns a valid access token, refreshing if necessary.
func (p *PasswordProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached == nil {
		stored, err := p.store.Load()
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("%w: run 'lineage auth login'", domain.ErrAuthRequired)
		}
		if err != nil {
			return "", fmt.Errorf("load token: %w", err)
		}
		p.cached = toOAuth2Token(stored)
	}

	if p.cached.Valid() {
		return p.cached.AccessToken, nil
	}
	if p.cached.RefreshToken == "" {
		return "", domain.ErrAuthExpired
	}

	logger.Debug("auth: refreshing access token")
	refreshed, err := p.config.TokenSource(ctx, p.cached).Token()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTokenRefreshFailed, err)
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = p.cached.RefreshToken
	}
	p.cached = refreshed

	if err := p.store.Save(toDomainToken(refreshed)); err != nil {
		logger.Warn("auth: could not store refreshed token: %v", err)
	}
	return refreshed.AccessToken, nil
}

// AuthMethod returns AuthMethodPassword.
func (p *PasswordProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodPassword
}

// IsAuthenticated returns true if a token is cached or stored.
// An expired token with a refresh token still counts.
func (p *PasswordProvider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	token := p.cached
	if token == nil {
		stored, err := p.store.Load()
		if err != nil {
			return false
		}
		token = toOAuth2Token(stored)
	}
	return token.Valid() || token.RefreshToken != ""
}

// InvalidateCache drops the cached token so the next call reads the store.
func (p *PasswordProvider) InvalidateCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}
