package infrastructure

import (
	"farmwatch.app/internal/config"
	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetBackendConfig returns farm backend configuration
func (c *ConfigProviderAdapter) GetBackendConfig() ports.BackendConfig {
	return ports.BackendConfig{
		BaseURL: c.config.Backend.BaseURL,
		Timeout: c.config.Backend.Timeout(),
	}
}

// GetWeatherConfig returns weather provider configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		BaseURL:  c.config.Weather.BaseURL,
		Timezone: c.config.Weather.Timezone,
		DefaultCoordinates: farm.Coordinates{
			Latitude:  c.config.Weather.DefaultLatitude,
			Longitude: c.config.Weather.DefaultLongitude,
		},
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetSessionConfig returns gateway session configuration
func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	return ports.SessionConfig{
		StoreType: c.config.Session.StoreType.String(),
		TTL:       c.config.Session.TTL(),
	}
}
