package service

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// AuthGateway covers the order server's authentication endpoints.
type AuthGateway interface {
	Login(ctx context.Context, credentials entity.Credentials) (*entity.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// SetAuth attaches the bearer header to every later request; an empty token detaches it.
	SetAuth(accessToken string)
}

// UserGateway covers user administration endpoints.
type UserGateway interface {
	ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error)
	CreateUser(ctx context.Context, user entity.NewUser) (*entity.User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) error
	SetUserRole(ctx context.Context, userID int64, role entity.Role) error
}

// OrderGateway covers order endpoints, including the closure workflow.
type OrderGateway interface {
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
	CreateOrder(ctx context.Context, order entity.NewOrder) (*entity.Order, error)

	// StartOrder notifies the server the technician began work on the order.
	StartOrder(ctx context.Context, orderID string) error

	// ValidateToken confirms the order-scoped token and returns the order it unlocks.
	ValidateToken(ctx context.Context, orderID, token string) (*entity.Order, error)

	// CloseOrder posts the closure and returns the server's confirmation message.
	CloseOrder(ctx context.Context, submission *entity.ClosureSubmission) (string, error)
	Stats(ctx context.Context) (*entity.Stats, error)
	DownloadPDF(ctx context.Context, orderID string, full bool) (*entity.Document, error)
	Audits(ctx context.Context, orderID string) ([]*entity.AuditEntry, error)
}
