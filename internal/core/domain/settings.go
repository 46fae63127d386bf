package domain

import "time"

// Default gateway settings.
const (
	DefaultGatewayPath    = "/srv/lineage-tracker/get_dataset_family_tree"
	DefaultGatewayTimeout = 30 * time.Second
	DefaultRatePerSecond  = 2.0
)

// GatewaySettings configures the remote lineage service.
type GatewaySettings struct {
	// BaseURL is the scheme and host of the lineage service.
	BaseURL string

	// Path is the family tree endpoint. The lineage id is sent as the uuid
	// query parameter.
	Path string

	// Timeout bounds a single fetch.
	Timeout time.Duration

	// RatePerSecond throttles outgoing requests. Zero disables throttling.
	RatePerSecond float64
}

// IsConfigured returns true if a base URL is set.
func (g GatewaySettings) IsConfigured() bool {
	return g.BaseURL != ""
}

// AuthSettings configures how the bearer credential is obtained.
type AuthSettings struct {
	// Method selects the credential provider.
	Method AuthMethod

	// Token is the static bearer token for AuthMethodToken.
	Token string

	// TokenURL is the identity provider token endpoint.
	TokenURL string

	// ClientID and ClientSecret identify this client to the identity provider.
	ClientID     string
	ClientSecret string

	// Scopes are requested for password and client credential grants.
	Scopes []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Gateway GatewaySettings
	Auth    AuthSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The gateway base URL is left empty; users must configure it.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Gateway: GatewaySettings{
			Path:          DefaultGatewayPath,
			Timeout:       DefaultGatewayTimeout,
			RatePerSecond: DefaultRatePerSecond,
		},
		Auth: AuthSettings{
			Method: AuthMethodNone,
		},
	}
}
