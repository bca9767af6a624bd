package ports

import (
	"context"
	"time"

	"farmwatch.app/internal/core/farm"
)

// StoredCookie is a backend cookie kept between gateway requests
type StoredCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StoredSession is what the gateway remembers about a logged-in screen
type StoredSession struct {
	ID        string         `json:"id"`
	User      farm.Session   `json:"user"`
	Cookies   []StoredCookie `json:"cookies"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// Expired reports whether the session outlived its TTL at now
func (s *StoredSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// SessionStore defines the contract for gateway session persistence.
// Get returns a NotFound error for unknown or expired ids.
type SessionStore interface {
	Save(ctx context.Context, session *StoredSession) error
	Get(ctx context.Context, id string) (*StoredSession, error)
	Delete(ctx context.Context, id string) error
	Name() string
}
