// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// UserUsecase defines the admin operations on accounts.
type UserUsecase interface {
	// ListUsers lists accounts; an empty role lists all of them.
	ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error)
	CreateUser(ctx context.Context, user entity.NewUser) (*entity.User, error)
	SetActive(ctx context.Context, userID int64, active bool) error
	SetRole(ctx context.Context, userID int64, role entity.Role) error
}
