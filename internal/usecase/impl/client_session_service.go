package impl

import (
	"context"
	"log/slog"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clientSessionService implements the ClientSessionUsecase interface. Unlike
// authService it never attaches a bearer to the shared client: each caller's
// token travels in its own request context.
type clientSessionService struct {
	gateway  service.AuthGateway
	registry service.SessionRegistry
	tokens   service.TokenInspector
	validate *validator.Validate
	logger   *slog.Logger
}

// ClientSessionServiceParams holds dependencies for ClientSessionService, injected by Fx.
type ClientSessionServiceParams struct {
	fx.In

	Gateway  service.AuthGateway
	Registry service.SessionRegistry
	Tokens   service.TokenInspector
	Logger   *slog.Logger
}

// NewClientSessionService is the constructor for clientSessionService.
func NewClientSessionService(params ClientSessionServiceParams) usecase.ClientSessionUsecase {
	return &clientSessionService{
		gateway:  params.Gateway,
		registry: params.Registry,
		tokens:   params.Tokens,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

func (srv *clientSessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges the credentials for a session and registers it under a new id.
func (srv *clientSessionService) Login(ctx context.Context, credentials entity.Credentials) (string, *entity.Session, error) {
	if err := srv.validate.Struct(credentials); err != nil {
		return "", nil, domainerrors.ErrMissingInput.WithDetails("username and password are required")
	}

	result, err := srv.gateway.Login(ctx, credentials)
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("username", credentials.Username), slog.Any("error", err))

		return "", nil, errors.Wrap(err, "login")
	}

	session := &entity.Session{
		AccessToken:  result.Access,
		RefreshToken: result.Refresh,
		Role:         result.Role,
	}
	readSessionClaims(srv.tokens, srv.log(ctx), session)

	id, err := srv.registry.Create(session)
	if err != nil {
		return "", nil, errors.Wrap(err, "register session")
	}
	srv.log(ctx).Info("Client logged in", slog.String("username", credentials.Username), slog.String("role", session.Role.String()))

	return id, session, nil
}

func (srv *clientSessionService) Resolve(_ context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	session, err := srv.registry.Get(id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return session, nil
}

// Refresh exchanges the client's refresh token and stores the new access token.
func (srv *clientSessionService) Refresh(ctx context.Context, id string) (*entity.Session, error) {
	session, err := srv.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.RefreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenMissing
	}

	access, err := srv.gateway.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "refresh session")
	}

	session.AccessToken = access
	session.AccessExpiresAt = nil
	readSessionClaims(srv.tokens, srv.log(ctx), session)

	if err := srv.registry.Update(id, session); err != nil {
		return nil, errors.Wrap(err, "store refreshed session")
	}
	srv.log(ctx).Debug("Client session refreshed")

	return session, nil
}

func (srv *clientSessionService) Logout(ctx context.Context, id string) error {
	if err := srv.registry.Delete(id); err != nil {
		return errors.Wrap(err, "forget session")
	}
	srv.log(ctx).Info("Client logged out")

	return nil
}
