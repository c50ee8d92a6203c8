package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ports"
)

// SessionFile persists the authenticated session as a single JSON blob on
// disk. No encryption, no expiry, no multi-profile support.
type SessionFile struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.CredentialStore = (*SessionFile)(nil)

// NewSessionFile creates a SessionFile at the given path
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Persist writes the session blob, creating the directory if needed
func (s *SessionFile) Persist(session domain.AuthSession) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	logging.Logger.Debug("Session persisted", "path", s.path, "user", session.User.Email)
	return nil
}

// Restore reads the session blob. Returns (nil, nil) when the file is absent
// or malformed; a corrupt blob is treated as no session, not a failure.
func (s *SessionFile) Restore() (*domain.AuthSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session domain.AuthSession
	if err := json.Unmarshal(data, &session); err != nil {
		logging.Logger.Warn("Discarding malformed session file", "path", s.path, "error", err)
		return nil, nil
	}
	if session.Token == "" {
		logging.Logger.Warn("Discarding session file without token", "path", s.path)
		return nil, nil
	}

	return &session, nil
}

// Clear removes the session blob; a missing file is not an error
func (s *SessionFile) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
