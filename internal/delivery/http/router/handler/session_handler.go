package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/delivery/http/middleware"
	"fieldservice/internal/delivery/http/response"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/usecase"
	"fieldservice/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for login session handlers.
type SessionHandler struct {
	uc     usecase.ClientSessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.ClientSessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// sessionView never carries the order server tokens. SessionID is the
// gateway's own credential and is only returned by Login.
type sessionView struct {
	SessionID     string     `json:"session_id,omitempty"`
	Authenticated bool       `json:"authenticated"`
	Role          string     `json:"role,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Expiry        string     `json:"expiry,omitempty"`
}

func newSessionView(session *entity.Session) sessionView {
	if !session.IsAuthenticated() {
		return sessionView{}
	}

	return sessionView{
		Authenticated: true,
		Role:          session.Role.String(),
		ExpiresAt:     session.AccessExpiresAt,
		Expiry:        util.FormatExpiry(session.AccessExpiresAt, time.Now()),
	}
}

// Login handles the login request. The caller authenticates later requests
// with "Authorization: Bearer <session_id>".
func (h *SessionHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	id, session, err := h.uc.Login(c.Request().Context(), entity.Credentials{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := newSessionView(session)
	view.SessionID = id
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, view, "Login successful")
}

// Logout forgets the caller's session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), callerSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionView{}, "Logout successful")
}

// Current returns the role and expiry of the caller's session.
func (h *SessionHandler) Current(c echo.Context) error {
	return response.Success(c, http.StatusOK, newSessionView(middleware.SessionFrom(c)), "")
}

// Refresh exchanges the caller's refresh token for a new access token.
func (h *SessionHandler) Refresh(c echo.Context) error {
	session, err := h.uc.Refresh(c.Request().Context(), callerSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(session), "Session refreshed")
}

func callerSessionID(c echo.Context) string {
	return deliverycontext.GetSessionID(c.Request().Context())
}
