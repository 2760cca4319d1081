package session

import (
	"sync"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"
)

// MemoryStore keeps the session for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	sess entity.Session
}

var _ service.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.sess

	return &sess, nil
}

func (s *MemoryStore) Write(sess *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess == nil {
		s.sess = entity.Session{}

		return nil
	}
	s.sess = *sess

	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Write(nil)
}
