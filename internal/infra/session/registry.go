package session

import (
	"sync"
	"time"

	"fieldservice/config"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"

	"github.com/google/uuid"
)

type registryEntry struct {
	session  entity.Session
	lastSeen time.Time
}

// Registry holds the gateway's per-client sessions in memory. An entry not
// used for idleTimeout is dropped; a zero idleTimeout keeps entries until Delete.
type Registry struct {
	idleTimeout time.Duration
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*registryEntry
}

var _ service.SessionRegistry = (*Registry)(nil)

func NewRegistry(idleTimeout time.Duration) *Registry {
	return &Registry{
		idleTimeout: idleTimeout,
		now:         time.Now,
		entries:     make(map[string]*registryEntry),
	}
}

// NewRegistryFromConfig builds the registry with session.idleTimeout.
func NewRegistryFromConfig(cfg *config.Config) service.SessionRegistry {
	return NewRegistry(cfg.Session.IdleTimeout)
}

// Create stores a copy of session under a fresh random id.
func (r *Registry) Create(session *entity.Session) (string, error) {
	if !session.IsAuthenticated() {
		return "", domainerrors.ErrUnauthenticated
	}

	id := uuid.NewString()
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(now)
	r.entries[id] = &registryEntry{session: *session, lastSeen: now}

	return id, nil
}

// Get returns a copy of the session and marks it as used.
func (r *Registry) Get(id string) (*entity.Session, error) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}
	if r.idleLocked(entry, now) {
		delete(r.entries, id)

		return nil, domainerrors.ErrUnauthenticated
	}
	entry.lastSeen = now
	session := entry.session

	return &session, nil
}

func (r *Registry) Update(id string, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return domainerrors.ErrUnauthenticated
	}
	entry.session = *session
	entry.lastSeen = r.now()

	return nil
}

// Delete forgets id. Unknown ids are not an error.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)

	return nil
}

// Len reports how many sessions are held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

func (r *Registry) idleLocked(entry *registryEntry, now time.Time) bool {
	return r.idleTimeout > 0 && now.Sub(entry.lastSeen) >= r.idleTimeout
}

func (r *Registry) pruneLocked(now time.Time) {
	for id, entry := range r.entries {
		if r.idleLocked(entry, now) {
			delete(r.entries, id)
		}
	}
}
