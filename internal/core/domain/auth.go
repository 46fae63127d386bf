package domain

import (
	"fmt"
	"time"
)

// AuthMethod identifies how gateway requests obtain their bearer credential.
type AuthMethod string

const (
	// AuthMethodNone sends requests without an Authorization header.
	AuthMethodNone AuthMethod = "none"

	// AuthMethodToken uses a static bearer token from configuration or environment.
	AuthMethodToken AuthMethod = "token"

	// AuthMethodPassword uses a token obtained by `auth login` and refreshes it
	// through the identity provider.
	AuthMethodPassword AuthMethod = "password"

	// AuthMethodClientCredentials uses the OAuth 2.0 client credentials grant.
	AuthMethodClientCredentials AuthMethod = "client_credentials"
)

// ParseAuthMethod converts a configuration value into an AuthMethod.
// An empty value means AuthMethodNone.
func ParseAuthMethod(s string) (AuthMethod, error) {
	switch m := AuthMethod(s); m {
	case "":
		return AuthMethodNone, nil
	case AuthMethodNone, AuthMethodToken, AuthMethodPassword, AuthMethodClientCredentials:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown auth method %q", ErrInvalidInput, s)
	}
}

// OAuthToken represents stored OAuth credentials.
type OAuthToken struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the token has expired.
func (t *OAuthToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}
