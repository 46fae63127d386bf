package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
)

// AuthStatus describes the configured gateway credential.
type AuthStatus struct {
	// Method is the configured authentication method.
	Method domain.AuthMethod

	// Authenticated is true if a usable credential is available.
	Authenticated bool

	// Expiry is when the stored login token expires. Zero if unknown.
	Expiry time.Time
}

// AuthService manages the login used for gateway requests.
type AuthService interface {
	// Login exchanges user credentials for a token and stores it.
	Login(ctx context.Context, username, password string) error

	// Logout removes any stored token.
	Logout() error

	// Status reports the current authentication state.
	Status() AuthStatus
}
