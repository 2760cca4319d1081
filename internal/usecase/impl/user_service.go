// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	gateway  service.UserGateway
	validate *validator.Validate
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Gateway service.UserGateway
	Logger  *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		gateway:  params.Gateway,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	if role != "" && !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	users, err := srv.gateway.ListUsers(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	return users, nil
}

func (srv *userService) CreateUser(ctx context.Context, user entity.NewUser) (*entity.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if err := srv.validate.Struct(user); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	created, err := srv.gateway.CreateUser(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "create user")
	}
	srv.log(ctx).Info("User created", slog.Int64("user_id", created.ID), slog.String("role", user.Role.String()))

	return created, nil
}

func (srv *userService) SetActive(ctx context.Context, userID int64, active bool) error {
	if userID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	if err := srv.gateway.SetUserActive(ctx, userID, active); err != nil {
		return errors.Wrapf(err, "set user %d active=%t", userID, active)
	}
	srv.log(ctx).Info("User activation changed", slog.Int64("user_id", userID), slog.Bool("active", active))

	return nil
}

func (srv *userService) SetRole(ctx context.Context, userID int64, role entity.Role) error {
	if userID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	if err := srv.gateway.SetUserRole(ctx, userID, role); err != nil {
		return errors.Wrapf(err, "set user %d role", userID)
	}
	srv.log(ctx).Info("User role changed", slog.Int64("user_id", userID), slog.String("role", role.String()))

	return nil
}
