package auth

import (
	"fmt"
	"time"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
)

// Config keys for the stored login token.
const (
	keyAccessToken  = "auth.access_token"
	keyRefreshToken = "auth.refresh_token"
	keyTokenType    = "auth.token_type"
	keyExpiry       = "auth.expiry"
)

// Ensure ConfigTokenStore implements the interface.
var _ driven.TokenStore = (*ConfigTokenStore)(nil)

// ConfigTokenStore persists the login token in the application config file.
type ConfigTokenStore struct {
	config driven.ConfigStore
}

// NewConfigTokenStore creates a token store backed by a config store.
func NewConfigTokenStore(config driven.ConfigStore) *ConfigTokenStore {
	return &ConfigTokenStore{config: config}
}

// Load returns the stored token, or domain.ErrNotFound if none is stored.
func (s *ConfigTokenStore) Load() (*domain.OAuthToken, error) {
	access := s.config.GetString(keyAccessToken)
	if access == "" {
		return nil, domain.ErrNotFound
	}

	token := &domain.OAuthToken{
		AccessToken:  access,
		RefreshToken: s.config.GetString(keyRefreshToken),
		TokenType:    s.config.GetString(keyTokenType),
	}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}
	if raw := s.config.GetString(keyExpiry); raw != "" {
		expiry, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", keyExpiry, err)
		}
		token.Expiry = expiry
	}
	return token, nil
}

// Save stores a token, replacing any previous one.
func (s *ConfigTokenStore) Save(token *domain.OAuthToken) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: empty token", domain.ErrInvalidInput)
	}

	expiry := ""
	if !token.Expiry.IsZero() {
		expiry = token.Expiry.UTC().Format(time.RFC3339)
	}
	values := []struct {
		key   string
		value string
	}{
		{keyAccessToken, token.AccessToken},
		{keyRefreshToken, token.RefreshToken},
		{keyTokenType, token.TokenType},
		{keyExpiry, expiry},
	}
	for _, v := range values {
		var err error
		if v.value == "" {
			err = s.config.Delete(v.key)
		} else {
			err = s.config.Set(v.key, v.value)
		}
		if err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Clear removes the stored token.
func (s *ConfigTokenStore) Clear() error {
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyTokenType, keyExpiry} {
		if err := s.config.Delete(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}
