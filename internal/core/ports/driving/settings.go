package driving

import "github.com/custodia-labs/lineage-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetGatewayURL updates the lineage service base URL.
	SetGatewayURL(baseURL string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
