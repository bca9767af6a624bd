package database

import (
	"context"
	"encoding/json"
	"time"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
	"farmwatch.app/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionModel represents the database model for gateway sessions
type SessionModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"index"`
	Email     string    `gorm:"index"`
	User      string    `gorm:"type:text;not null"`
	Cookies   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

func (SessionModel) TableName() string {
	return "gateway_sessions"
}

// SessionRepositoryAdapter implements the SessionStore port using GORM
type SessionRepositoryAdapter struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepositoryAdapter creates a new session repository adapter
func NewSessionRepositoryAdapter(db *gorm.DB) *SessionRepositoryAdapter {
	return &SessionRepositoryAdapter{db: db, now: time.Now}
}

// Save inserts or replaces a session
func (r *SessionRepositoryAdapter) Save(ctx context.Context, session *ports.StoredSession) error {
	if session == nil || session.ID == "" {
		return errors.NewValidationError("session id cannot be empty")
	}

	model, err := r.dataToModel(session)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model)
	if result.Error != nil {
		return errors.NewStorageError("failed to save session", result.Error)
	}
	return nil
}

// Get retrieves a live session by id
func (r *SessionRepositoryAdapter) Get(ctx context.Context, id string) (*ports.StoredSession, error) {
	if id == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	var model SessionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, errors.NewStorageError("failed to find session", result.Error)
	}

	session, err := r.modelToData(&model)
	if err != nil {
		return nil, err
	}
	if session.Expired(r.now()) {
		return nil, errors.NewNotFoundError("session expired")
	}
	return session, nil
}

// Delete removes a session
func (r *SessionRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("session id cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionModel{})
	if result.Error != nil {
		return errors.NewStorageError("failed to delete session", result.Error)
	}
	return nil
}

// DeleteExpired purges sessions that outlived their TTL
func (r *SessionRepositoryAdapter) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", r.now().UTC()).Delete(&SessionModel{})
	if result.Error != nil {
		return 0, errors.NewStorageError("failed to delete expired sessions", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepositoryAdapter) Name() string {
	return "database"
}

// Ping checks the database connection
func (r *SessionRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

func (r *SessionRepositoryAdapter) dataToModel(session *ports.StoredSession) (*SessionModel, error) {
	user, err := json.Marshal(session.User)
	if err != nil {
		return nil, errors.NewStorageError("failed to encode session user", err)
	}
	cookies, err := json.Marshal(session.Cookies)
	if err != nil {
		return nil, errors.NewStorageError("failed to encode session cookies", err)
	}

	return &SessionModel{
		ID:        session.ID,
		UserID:    session.User.ID.String(),
		Email:     session.User.Email,
		User:      string(user),
		Cookies:   string(cookies),
		CreatedAt: session.CreatedAt.UTC(),
		ExpiresAt: session.ExpiresAt.UTC(),
	}, nil
}

func (r *SessionRepositoryAdapter) modelToData(model *SessionModel) (*ports.StoredSession, error) {
	var user farm.Session
	if err := json.Unmarshal([]byte(model.User), &user); err != nil {
		return nil, errors.NewStorageError("failed to decode session user", err)
	}
	var cookies []ports.StoredCookie
	if err := json.Unmarshal([]byte(model.Cookies), &cookies); err != nil {
		return nil, errors.NewStorageError("failed to decode session cookies", err)
	}

	return &ports.StoredSession{
		ID:        model.ID,
		User:      user,
		Cookies:   cookies,
		CreatedAt: model.CreatedAt,
		ExpiresAt: model.ExpiresAt,
	}, nil
}
