package services

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyGatewayBaseURL   = "gateway.base_url"
	KeyGatewayPath      = "gateway.path"
	KeyGatewayTimeout   = "gateway.timeout_seconds"
	KeyGatewayRate      = "gateway.rate_per_second"
	KeyAuthMethod       = "auth.method"
	KeyAuthToken        = "auth.token"
	KeyAuthTokenURL     = "auth.token_url"
	KeyAuthClientID     = "auth.client_id"
	KeyAuthClientSecret = "auth.client_secret"
	KeyAuthScopes       = "auth.scopes"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	method, err := domain.ParseAuthMethod(s.configStore.GetString(KeyAuthMethod))
	if err != nil {
		return nil, err
	}

	settings := &domain.AppSettings{
		Gateway: domain.GatewaySettings{
			BaseURL:       s.configStore.GetString(KeyGatewayBaseURL), // No default - must be configured
			Path:          s.getString(KeyGatewayPath, defaults.Gateway.Path),
			Timeout:       s.getSeconds(KeyGatewayTimeout, defaults.Gateway.Timeout),
			RatePerSecond: s.getFloat(KeyGatewayRate, defaults.Gateway.RatePerSecond),
		},
		Auth: domain.AuthSettings{
			Method:       method,
			Token:        s.configStore.GetString(KeyAuthToken),
			TokenURL:     s.configStore.GetString(KeyAuthTokenURL),
			ClientID:     s.configStore.GetString(KeyAuthClientID),
			ClientSecret: s.configStore.GetString(KeyAuthClientSecret),
			Scopes:       s.configStore.GetStringSlice(KeyAuthScopes),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyGatewayBaseURL, settings.Gateway.BaseURL},
		{KeyGatewayPath, settings.Gateway.Path},
		{KeyGatewayTimeout, int(settings.Gateway.Timeout / time.Second)},
		{KeyGatewayRate, settings.Gateway.RatePerSecond},
		{KeyAuthMethod, string(settings.Auth.Method)},
		{KeyAuthTokenURL, settings.Auth.TokenURL},
		{KeyAuthClientID, settings.Auth.ClientID},
		{KeyAuthScopes, settings.Auth.Scopes},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Secrets are only written when set, so an empty form never erases them.
	if settings.Auth.Token != "" {
		if err := s.configStore.Set(KeyAuthToken, settings.Auth.Token); err != nil {
			return fmt.Errorf("save %s: %w", KeyAuthToken, err)
		}
	}
	if settings.Auth.ClientSecret != "" {
		if err := s.configStore.Set(KeyAuthClientSecret, settings.Auth.ClientSecret); err != nil {
			return fmt.Errorf("save %s: %w", KeyAuthClientSecret, err)
		}
	}

	return nil
}

// SetGatewayURL updates the lineage service base URL.
func (s *SettingsService) SetGatewayURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: gateway url %q must be absolute", domain.ErrInvalidInput, baseURL)
	}
	return s.configStore.Set(KeyGatewayBaseURL, baseURL)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

// getFloat accepts any numeric encoding; TOML may store a whole number as
// an integer. An explicit zero disables throttling.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
