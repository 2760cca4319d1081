package service

import "fieldservice/internal/domain/entity"

// SessionStore persists the process-wide login session.
// Read returns an empty, non-nil session when nothing is stored.
type SessionStore interface {
	Read() (*entity.Session, error)
	Write(session *entity.Session) error
	Clear() error
}

// SessionRegistry keeps one login session per gateway client, keyed by an
// opaque id handed to that client. Get returns ErrUnauthenticated for an
// unknown or idle id.
type SessionRegistry interface {
	Create(session *entity.Session) (string, error)
	Get(id string) (*entity.Session, error)
	Update(id string, session *entity.Session) error
	Delete(id string) error
}
