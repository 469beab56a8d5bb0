package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/repolist/internal/core/domain"
	"github.com/custodia-labs/repolist/internal/core/ports/driven"
	"github.com/custodia-labs/repolist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyToken             = "github.token"
	keyOwnerFilter       = "github.owner_filter"
	keyEndpoint          = "github.endpoint"
	keyUserAgent         = "github.user_agent"
	keyPageSize          = "github.page_size"
	keyMaxPages          = "github.max_pages"
	keyRequestsPerSecond = "github.requests_per_second"
	keyTimeoutSeconds    = "github.timeout_seconds"
)

// Environment variables that override stored settings.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvToken       = "REPOLIST_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvOwnerFilter = "REPOLIST_OWNER_FILTER"
	EnvEndpoint    = "REPOLIST_ENDPOINT"
)

// LookupEnvFunc reads an environment variable. os.LookupEnv is the default.
type LookupEnvFunc func(key string) (string, bool)

// SettingsService resolves settings from the config store and environment.
// Environment values take precedence over stored ones.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   LookupEnvFunc
}

// NewSettingsService creates a new settings service.
// A nil lookupEnv reads the process environment.
func NewSettingsService(configStore driven.ConfigStore, lookupEnv LookupEnvFunc) *SettingsService {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   lookupEnv,
	}
}

// Get retrieves current settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.Token = s.getString(keyToken, settings.Token)
	settings.OwnerFilter = s.getString(keyOwnerFilter, settings.OwnerFilter)
	settings.Endpoint = s.getString(keyEndpoint, settings.Endpoint)
	settings.UserAgent = s.getString(keyUserAgent, settings.UserAgent)
	settings.PageSize = s.getInt(keyPageSize, settings.PageSize)
	settings.MaxPages = s.getInt(keyMaxPages, settings.MaxPages)
	settings.RequestsPerSecond = s.getFloat(keyRequestsPerSecond, settings.RequestsPerSecond)
	if secs := s.configStore.GetInt(keyTimeoutSeconds); secs > 0 {
		settings.Timeout = time.Duration(secs) * time.Second
	}

	if token, ok := s.env(EnvToken); ok {
		settings.Token = token
	} else if token, ok := s.env(EnvGitHubToken); ok {
		settings.Token = token
	}
	if owner, ok := s.env(EnvOwnerFilter); ok {
		settings.OwnerFilter = owner
	}
	if endpoint, ok := s.env(EnvEndpoint); ok {
		settings.Endpoint = endpoint
	}

	if settings.MaxPages < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrConfiguration, keyMaxPages)
	}
	if settings.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", domain.ErrConfiguration, keyRequestsPerSecond)
	}

	return &settings, nil
}

// SetToken validates and persists the API token.
func (s *SettingsService) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if err := domain.ValidateToken(token); err != nil {
		return err
	}
	if err := s.configStore.Set(keyToken, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// SetOwnerFilter persists the default owner filter in resource path form.
func (s *SettingsService) SetOwnerFilter(owner string) error {
	filter := NormaliseOwnerFilter(owner)
	if filter == "" {
		return fmt.Errorf("%w: owner must not be empty", domain.ErrConfiguration)
	}
	if err := s.configStore.Set(keyOwnerFilter, filter); err != nil {
		return fmt.Errorf("save owner filter: %w", err)
	}
	return nil
}

// ClearOwnerFilter removes the default owner filter.
func (s *SettingsService) ClearOwnerFilter() error {
	if err := s.configStore.Delete(keyOwnerFilter); err != nil {
		return fmt.Errorf("clear owner filter: %w", err)
	}
	return nil
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// env returns a non-blank environment value.
func (s *SettingsService) env(key string) (string, bool) {
	val, ok := s.lookupEnv(key)
	val = strings.TrimSpace(val)
	return val, ok && val != ""
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := strings.TrimSpace(s.configStore.GetString(key)); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}
