package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService manages the stored login used for gateway requests.
type AuthService struct {
	authenticator driven.PasswordAuthenticator
	tokenStore    driven.TokenStore
	tokenProvider driven.TokenProvider
}

// NewAuthService creates a new auth service.
// authenticator and tokenStore may be nil when password login is not configured.
func NewAuthService(
	authenticator driven.PasswordAuthenticator,
	tokenStore driven.TokenStore,
	tokenProvider driven.TokenProvider,
) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokenStore:    tokenStore,
		tokenProvider: tokenProvider,
	}
}

// Login exchanges user credentials for a token and stores it.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	if s.authenticator == nil || s.tokenStore == nil {
		return fmt.Errorf("password login: %w", domain.ErrNotImplemented)
	}
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}

	token, err := s.authenticator.PasswordLogin(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.tokenStore.Save(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Logout removes any stored token.
func (s *AuthService) Logout() error {
	if s.tokenStore == nil {
		return nil
	}
	return s.tokenStore.Clear()
}

// Status reports the current authentication state.
func (s *AuthService) Status() driving.AuthStatus {
	status := driving.AuthStatus{Method: domain.AuthMethodNone, Authenticated: true}
	if s.tokenProvider != nil {
		status.Method = s.tokenProvider.AuthMethod()
		status.Authenticated = s.tokenProvider.IsAuthenticated()
	}
	if s.tokenStore != nil {
		token, err := s.tokenStore.Load()
		if err == nil && token != nil {
			status.Expiry = token.Expiry
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			status.Authenticated = false
		}
	}
	return status
}
