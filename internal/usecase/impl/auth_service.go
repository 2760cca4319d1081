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

// authService implements the AuthUsecase interface.
type authService struct {
	gateway  service.AuthGateway
	store    service.SessionStore
	tokens   service.TokenInspector
	validate *validator.Validate
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Gateway service.AuthGateway
	Store   service.SessionStore
	Tokens  service.TokenInspector
	Logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		gateway:  params.Gateway,
		store:    params.Store,
		tokens:   params.Tokens,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges the credentials for a session, persists it and attaches the bearer header.
func (srv *authService) Login(ctx context.Context, credentials entity.Credentials) (*entity.Session, error) {
	if err := srv.validate.Struct(credentials); err != nil {
		return nil, domainerrors.ErrMissingInput.WithDetails("username and password are required")
	}

	result, err := srv.gateway.Login(ctx, credentials)
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("username", credentials.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login")
	}

	session := &entity.Session{
		AccessToken:  result.Access,
		RefreshToken: result.Refresh,
		Role:         result.Role,
	}
	srv.readClaims(ctx, session)

	if err := srv.store.Write(session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}
	srv.gateway.SetAuth(session.AccessToken)
	srv.log(ctx).Info("Logged in", slog.String("username", credentials.Username), slog.String("role", session.Role.String()))

	return session, nil
}

// Logout clears the whole session and detaches the bearer header.
func (srv *authService) Logout(ctx context.Context) error {
	srv.gateway.SetAuth("")
	if err := srv.store.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	srv.log(ctx).Info("Logged out")

	return nil
}

func (srv *authService) Current(ctx context.Context) (*entity.Session, error) {
	session, err := srv.store.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if !session.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}
	srv.readClaims(ctx, session)

	return session, nil
}

// Refresh exchanges the stored refresh token for a new access token.
func (srv *authService) Refresh(ctx context.Context) (*entity.Session, error) {
	session, err := srv.store.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
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
	srv.readClaims(ctx, session)

	if err := srv.store.Write(session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}
	srv.gateway.SetAuth(session.AccessToken)
	srv.log(ctx).Debug("Session refreshed")

	return session, nil
}

// readClaims fills the expiry, and the role when the server left it out, from the access token.
func (srv *authService) readClaims(ctx context.Context, session *entity.Session) {
	readSessionClaims(srv.tokens, srv.log(ctx), session)
}

func readSessionClaims(tokens service.TokenInspector, logger *slog.Logger, session *entity.Session) {
	claims, err := tokens.SessionClaims(session.AccessToken)
	if err != nil {
		logger.Debug("Access token has no readable claims", slog.Any("error", err))

		return
	}
	if session.Role == "" {
		session.Role = claims.Role
	}
	session.AccessExpiresAt = claims.ExpiresAt
}
