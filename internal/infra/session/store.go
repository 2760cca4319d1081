package session

import (
	"fieldservice/config"
	"fieldservice/internal/domain/service"

	"github.com/pkg/errors"
)

// NewStore builds the store selected by session.store.
func NewStore(cfg *config.Config) (service.SessionStore, error) {
	switch cfg.Session.Store {
	case "memory":
		return NewMemoryStore(), nil
	case "", "file":
		path, err := cfg.SessionPath()
		if err != nil {
			return nil, err
		}

		return NewFileStore(path)
	default:
		return nil, errors.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
