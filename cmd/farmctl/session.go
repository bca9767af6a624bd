package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"farmwatch.app/internal/core/farm"
	"farmwatch.app/internal/ports"
)

const sessionFileName = "session.json"

// savedSession is the backend session kept between farmctl runs
type savedSession struct {
	BackendURL string               `json:"backendUrl"`
	User       farm.Session         `json:"user"`
	Cookies    []ports.StoredCookie `json:"cookies"`
	SavedAt    time.Time            `json:"savedAt"`
}

type sessionFile struct {
	path string
}

func defaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "farmctl", sessionFileName), nil
}

// Load returns nil without error when no session was saved
func (f *sessionFile) Load() (*savedSession, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var saved savedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("session file %s is corrupt, remove it and log in again: %w", f.path, err)
	}
	return &saved, nil
}

// Save writes the session readable by the current user only
func (f *sessionFile) Save(saved *savedSession) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return os.Rename(tmp, f.path)
}

// Remove forgets the saved session; a missing file is not an error
func (f *sessionFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
