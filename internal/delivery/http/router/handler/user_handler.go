package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fieldservice/internal/delivery/http/response"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user administration handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type activeRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

// List returns the accounts, optionally filtered by ?role=.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), entity.Role(c.QueryParam("role")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

func (h *UserHandler) Create(c echo.Context) error {
	var input createUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.CreateUser(c.Request().Context(), entity.NewUser{
		Username: input.Username,
		Password: input.Password,
		Role:     entity.Role(input.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created")
}

func (h *UserHandler) SetActive(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var input activeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetActive(c.Request().Context(), userID, *input.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": userID, "is_active": *input.Active}, "User updated")
}

func (h *UserHandler) SetRole(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var input roleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetRole(c.Request().Context(), userID, entity.Role(input.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": userID, "role": input.Role}, "User updated")
}

func userIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	return id, nil
}
