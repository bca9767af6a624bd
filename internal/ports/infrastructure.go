package ports

import (
	"context"
	"time"

	"farmwatch.app/internal/core/farm"
)

// BackendConfig represents farm backend connection settings
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// WeatherConfig represents weather provider settings
type WeatherConfig struct {
	BaseURL            string
	Timezone           string
	DefaultCoordinates farm.Coordinates
}

// ServerConfig represents gateway server configuration
type ServerConfig struct {
	Port int
}

// SessionConfig represents gateway session storage configuration
type SessionConfig struct {
	StoreType string
	TTL       time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetBackendConfig() BackendConfig
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetSessionConfig() SessionConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for client call metrics
type MetricsCollector interface {
	RecordClientCall(ctx context.Context, operation string, outcome string, duration time.Duration)
	RecordSessionEvent(ctx context.Context, event string)
}
