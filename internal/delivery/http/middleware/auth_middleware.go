package middleware

import (
	"strings"
	"time"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeySession is the echo.Context key holding the caller's *entity.Session.
const KeySession = "session"

const bearerPrefix = "bearer "

// AuthMiddleware resolves the caller's own gateway session. Each client
// presents the id it got from /session/login as "Authorization: Bearer <id>".
type AuthMiddleware struct {
	sessions usecase.ClientSessionUsecase
	now      func() time.Time
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.ClientSessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, now: time.Now}
}

// Identify resolves the session without checking its expiry, so that an
// expired session can still be refreshed or logged out.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.resolve(c); err != nil {
			return err
		}

		return next(c)
	}
}

// Authenticate requires a session whose access token has not expired.
// Signatures are not checked here; the order server verifies every token it receives.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.resolve(c)
		if err != nil {
			return err
		}
		if session.IsExpired(m.now()) {
			return domainerrors.ErrUnauthenticated.WithDetails("session expired, refresh or log in again")
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session belongs to role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(KeySession).(*entity.Session)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !session.HasRole(role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}

// resolve looks up the caller's session and scopes the request context to it:
// downstream order server calls carry this caller's bearer and nobody else's.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.Session, error) {
	id := sessionID(c.Request().Header.Get(echo.HeaderAuthorization))
	if id == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("missing bearer session id")
	}

	ctx := c.Request().Context()
	session, err := m.sessions.Resolve(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ctx = deliverycontext.WithSessionID(ctx, id)
	ctx = deliverycontext.WithAccessToken(ctx, session.AccessToken)
	c.SetRequest(c.Request().WithContext(ctx))
	c.Set(KeySession, session)

	return session, nil
}

func sessionID(header string) string {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// SessionFrom returns the session stored by Identify or Authenticate.
func SessionFrom(c echo.Context) *entity.Session {
	session, _ := c.Get(KeySession).(*entity.Session)

	return session
}
