package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// ClientSessionUsecase keeps a separate login session for every HTTP client of
// the gateway. Clients only ever hold the opaque id returned by Login.
type ClientSessionUsecase interface {
	Login(ctx context.Context, credentials entity.Credentials) (string, *entity.Session, error)
	Resolve(ctx context.Context, id string) (*entity.Session, error)
	Refresh(ctx context.Context, id string) (*entity.Session, error)
	Logout(ctx context.Context, id string) error
}
