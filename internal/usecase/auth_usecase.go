package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// AuthUsecase manages the process-wide login session.
type AuthUsecase interface {
	Login(ctx context.Context, credentials entity.Credentials) (*entity.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*entity.Session, error)
	Refresh(ctx context.Context) (*entity.Session, error)
}
