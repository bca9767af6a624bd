package external

import (
	"fmt"

	"farmwatch.app/internal/config"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
)

type SessionStoreFactory struct{}

func NewSessionStoreFactory() *SessionStoreFactory {
	return &SessionStoreFactory{}
}

// CreateSessionStore builds the in-memory or Redis store. Database stores
// live in the database adapter package.
func (f *SessionStoreFactory) CreateSessionStore(cfg *config.SessionConfig) (ports.SessionStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("session config cannot be nil", nil)
	}

	switch cfg.StoreType {
	case config.SessionStoreMemory:
		return NewMemorySessionStore(), nil
	case config.SessionStoreRedis:
		store, err := NewRedisSessionStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported session store type: %s", cfg.StoreType.String()), nil)
	}
}
