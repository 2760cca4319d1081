// Package session persists the login session between runs.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"

	"github.com/pkg/errors"
)

// FileStore keeps the session as a JSON file readable only by the owner.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

var _ service.SessionStore = (*FileStore)(nil)

// NewFileStore creates a file-backed store, creating the parent directory.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "create session directory")
	}

	return &FileStore{path: path}, nil
}

// Read returns an empty session when no file exists.
func (s *FileStore) Read() (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &entity.Session{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}

	return &sess, nil
}

// Write replaces the stored session. The file is swapped in by rename so a
// concurrent reader never sees half a session.
func (s *FileStore) Write(sess *entity.Session) error {
	if sess == nil {
		return s.Clear()
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)

		return errors.Wrap(err, "replace session file")
	}

	return nil
}

// Clear removes access, refresh and role together.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}

// Path returns the session file location.
func (s *FileStore) Path() string {
	return s.path
}
