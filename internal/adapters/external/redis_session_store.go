package external

import (
	"context"
	"encoding/json"
	"time"

	"farmwatch.app/internal/config"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"github.com/go-redis/redis/v8"
)

// RedisSessionStore implements SessionStore port using Redis.
// Sessions are JSON values whose key expires with the session.
type RedisSessionStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSessionStore creates a new Redis session store and checks the connection
func NewRedisSessionStore(config *config.RedisConfig) (*RedisSessionStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisSessionStore{
		client:    client,
		keyPrefix: config.KeyPrefix,
	}, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, session *ports.StoredSession) error {
	if session == nil || session.ID == "" {
		return errors.NewValidationError("session id cannot be empty")
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = time.Until(session.ExpiresAt)
		if ttl <= 0 {
			return errors.NewValidationError("session already expired")
		}
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.NewStorageError("failed to encode session", err)
	}

	if err := r.client.Set(ctx, r.key(session.ID), data, ttl).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*ports.StoredSession, error) {
	if id == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, errors.NewStorageError("redis get operation failed", err)
	}

	var session ports.StoredSession
	if err := json.Unmarshal(val, &session); err != nil {
		return nil, errors.NewStorageError("failed to decode session", err)
	}
	if session.Expired(time.Now()) {
		return nil, errors.NewNotFoundError("session expired")
	}
	return &session, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("session id cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.NewStorageError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisSessionStore) Name() string {
	return "redis"
}

// Ping checks if Redis connection is alive
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisSessionStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}

func (r *RedisSessionStore) key(id string) string {
	return r.keyPrefix + id
}
