package config

import (
	"fmt"
	"strings"
	"time"

	"farmwatch.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB         = 15
	maxSessionTTL      = 43200
	maxPortNumber      = 65535
	maxBackendTimeout  = 120000
	minLatitude        = -90
	maxLatitude        = 90
	minLongitude       = -180
	maxLongitude       = 180
	defaultTimeoutMS   = 10000
	defaultTimezone    = "Africa/Nairobi"
	defaultWeatherURL  = "https://api.open-meteo.com"
	defaultBackendURL  = "https://smartagriculturebackend.onrender.com/"
	defaultSessionType = "memory"
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Backend BackendConfig `split_words:"true"`
	Weather WeatherConfig `split_words:"true"`
	Session SessionConfig `split_words:"true"`
	Logging LoggingConfig `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// BackendConfig points the client at the farm backend
type BackendConfig struct {
	BaseURL   string `envconfig:"BACKEND_BASE_URL" default:"https://smartagriculturebackend.onrender.com/"`
	TimeoutMS int    `envconfig:"BACKEND_TIMEOUT_MS" default:"10000"`
}

// Timeout returns the request ceiling applied to every client call
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutMS) * time.Millisecond
}

// WeatherConfig points the client at the public forecast service
type WeatherConfig struct {
	BaseURL          string  `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com"`
	Timezone         string  `envconfig:"WEATHER_TIMEZONE" default:"Africa/Nairobi"`
	DefaultLatitude  float64 `envconfig:"DEFAULT_LATITUDE" default:"0.375"`
	DefaultLongitude float64 `envconfig:"DEFAULT_LONGITUDE" default:"32.625"`
}

// SessionStoreType represents where the gateway keeps sessions
type SessionStoreType int

const (
	SessionStoreUnknown SessionStoreType = iota
	SessionStoreMemory
	SessionStoreRedis
	SessionStoreDatabase
)

// String returns the string representation of the store type
func (s SessionStoreType) String() string {
	switch s {
	case SessionStoreMemory:
		return "memory"
	case SessionStoreRedis:
		return "redis"
	case SessionStoreDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s SessionStoreType) IsValid() bool {
	return s == SessionStoreMemory || s == SessionStoreRedis || s == SessionStoreDatabase
}

// SessionStoreTypeFromString converts string to SessionStoreType enum
func SessionStoreTypeFromString(s string) SessionStoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return SessionStoreMemory
	case "redis":
		return SessionStoreRedis
	case "database", "db":
		return SessionStoreDatabase
	default:
		return SessionStoreUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *SessionStoreType) UnmarshalText(text []byte) error {
	*s = SessionStoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s SessionStoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type SessionConfig struct {
	StoreType  SessionStoreType `envconfig:"SESSION_STORE_TYPE" default:"memory"`
	TTLMinutes int              `envconfig:"SESSION_TTL_MINUTES" default:"1440"`
	Redis      RedisConfig      `split_words:"true"`
	Database   DatabaseConfig   `split_words:"true"`
}

// TTL returns how long a gateway session lives
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"farmwatch:session:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"farmwatch"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"farmwatch_sessions.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LoggingConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath    string `envconfig:"LOG_FILE_PATH" default:""`
	LogRequests bool   `envconfig:"LOG_REQUESTS" default:"true"`
}

// Default returns the configuration envconfig would produce with no
// environment set
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080},
		Backend: BackendConfig{BaseURL: defaultBackendURL, TimeoutMS: defaultTimeoutMS},
		Weather: WeatherConfig{
			BaseURL:          defaultWeatherURL,
			Timezone:         defaultTimezone,
			DefaultLatitude:  0.375,
			DefaultLongitude: 32.625,
		},
		Session: SessionConfig{
			StoreType:  SessionStoreTypeFromString(defaultSessionType),
			TTLMinutes: 1440,
			Redis: RedisConfig{
				Addr:         "localhost:6379",
				KeyPrefix:    "farmwatch:session:",
				DialTimeout:  5,
				ReadTimeout:  3,
				WriteTimeout: 3,
			},
			Database: DatabaseConfig{
				Driver:     "sqlite",
				Host:       "localhost",
				Port:       5432,
				User:       "postgres",
				Password:   "postgres",
				Name:       "farmwatch",
				SSLMode:    "disable",
				SQLitePath: "farmwatch_sessions.db",
			},
		},
		Logging: LoggingConfig{Level: "info", LogRequests: true},
	}
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (b *BackendConfig) Validate() error {
	if err := validateHTTPURL("BACKEND_BASE_URL", b.BaseURL); err != nil {
		return err
	}
	if b.TimeoutMS < 1 || b.TimeoutMS > maxBackendTimeout {
		return errors.NewConfigurationError("BACKEND_TIMEOUT_MS must be between 1 and 120000", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if err := validateHTTPURL("WEATHER_BASE_URL", w.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(w.Timezone) == "" {
		return errors.NewConfigurationError("WEATHER_TIMEZONE cannot be empty", nil)
	}
	if w.DefaultLatitude < minLatitude || w.DefaultLatitude > maxLatitude {
		return errors.NewConfigurationError("DEFAULT_LATITUDE must be between -90 and 90", nil)
	}
	if w.DefaultLongitude < minLongitude || w.DefaultLongitude > maxLongitude {
		return errors.NewConfigurationError("DEFAULT_LONGITUDE must be between -180 and 180", nil)
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if !s.StoreType.IsValid() {
		return errors.NewConfigurationError("SESSION_STORE_TYPE must be one of: memory, redis, database", nil)
	}
	if s.TTLMinutes < 1 || s.TTLMinutes > maxSessionTTL {
		return errors.NewConfigurationError("SESSION_TTL_MINUTES must be between 1 and 43200", nil)
	}

	switch s.StoreType {
	case SessionStoreRedis:
		return s.Redis.Validate()
	case SessionStoreDatabase:
		return s.Database.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis sessions", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func validateHTTPURL(key, value string) error {
	if value == "" {
		return errors.NewConfigurationError(key+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(key+" must start with http:// or https://", nil)
	}
	return nil
}
