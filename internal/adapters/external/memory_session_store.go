package external

import (
	"context"
	"sync"
	"time"

	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
)

// MemorySessionStore keeps gateway sessions in process memory
type MemorySessionStore struct {
	data  map[string]ports.StoredSession
	mutex sync.RWMutex
	now   func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		data: make(map[string]ports.StoredSession),
		now:  time.Now,
	}
}

func (s *MemorySessionStore) Save(ctx context.Context, session *ports.StoredSession) error {
	if session == nil || session.ID == "" {
		return errors.NewValidationError("session id cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[session.ID] = copySession(session)
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*ports.StoredSession, error) {
	if id == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	s.mutex.RLock()
	session, exists := s.data[id]
	s.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("session not found")
	}
	if session.Expired(s.now()) {
		s.mutex.Lock()
		delete(s.data, id)
		s.mutex.Unlock()
		return nil, errors.NewNotFoundError("session expired")
	}

	result := copySession(&session)
	return &result, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("session id cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, id)
	return nil
}

// DeleteExpired drops every session past its expiry
func (s *MemorySessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	now := s.now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var removed int64
	for id, session := range s.data {
		if session.Expired(now) {
			delete(s.data, id)
			removed++
		}
	}
	return removed, nil
}

func (s *MemorySessionStore) Name() string {
	return "memory"
}

// Len returns the number of stored sessions, expired ones included
func (s *MemorySessionStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

func copySession(session *ports.StoredSession) ports.StoredSession {
	clone := *session
	clone.Cookies = append([]ports.StoredCookie(nil), session.Cookies...)
	return clone
}
