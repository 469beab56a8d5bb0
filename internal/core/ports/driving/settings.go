package driving

import "github.com/custodia-labs/repolist/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves the current settings from storage and environment.
	Get() (*domain.Settings, error)

	// SetToken validates and persists the API token.
	SetToken(token string) error

	// SetOwnerFilter persists the default owner filter.
	SetOwnerFilter(owner string) error

	// ClearOwnerFilter removes the default owner filter.
	ClearOwnerFilter() error

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
