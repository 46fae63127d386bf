// Package auth provides the token providers used by the lineage gateway.
package auth

import (
	"fmt"
	"os"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

// EnvToken names the environment variable holding a static bearer token.
// When set it takes precedence over the configured auth method.
const EnvToken = "LINEAGE_TOKEN"

// Factory creates TokenProviders from auth settings.
type Factory struct {
	tokenStore driven.TokenStore
	getenv     func(string) string
}

// NewFactory creates a token provider factory.
// tokenStore holds logins for AuthMethodPassword.
func NewFactory(tokenStore driven.TokenStore) *Factory {
	return &Factory{tokenStore: tokenStore, getenv: os.Getenv}
}

// Providers bundles the provider for gateway calls with the authenticator
// used by interactive login. Authenticator is nil unless the method is
// AuthMethodPassword.
type Providers struct {
	TokenProvider driven.TokenProvider
	Authenticator driven.PasswordAuthenticator
}

// Create returns the providers for the configured auth method.
func (f *Factory) Create(settings domain.AuthSettings) (Providers, error) {
	if token := f.getenv(EnvToken); token != "" {
		logger.Debug("auth: using bearer token from %s", EnvToken)
		return Providers{TokenProvider: NewStaticTokenProvider(token)}, nil
	}

	switch settings.Method {
	case domain.AuthMethodNone, "":
		return Providers{TokenProvider: Anonymous}, nil

	case domain.AuthMethodToken:
		return Providers{TokenProvider: NewStaticTokenProvider(settings.Token)}, nil

	case domain.AuthMethodPassword:
		if settings.TokenURL == "" {
			return Providers{}, fmt.Errorf("%w: password auth requires auth.token_url", domain.ErrInvalidInput)
		}
		if f.tokenStore == nil {
			return Providers{}, fmt.Errorf("%w: password auth requires a token store", domain.ErrInvalidInput)
		}
		provider := NewPasswordProvider(settings, f.tokenStore)
		return Providers{TokenProvider: provider, Authenticator: provider}, nil

	case domain.AuthMethodClientCredentials:
		if settings.TokenURL == "" || settings.ClientID == "" {
			return Providers{}, fmt.Errorf(
				"%w: client credentials auth requires auth.token_url and auth.client_id", domain.ErrInvalidInput)
		}
		return Providers{TokenProvider: NewClientCredentialsProvider(settings)}, nil

	default:
		return Providers{}, fmt.Errorf("%w: unknown auth method %q", domain.ErrInvalidInput, settings.Method)
	}
}
