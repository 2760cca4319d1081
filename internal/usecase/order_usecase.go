package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// OrderUsecase covers order listings, creation, statistics and open-link QR codes.
type OrderUsecase interface {
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
	CreateOrder(ctx context.Context, order entity.NewOrder) (*entity.Order, error)
	Audits(ctx context.Context, orderID string) ([]*entity.AuditEntry, error)
	Stats(ctx context.Context) (*entity.Stats, error)

	// OpenLinkQR renders the order's open link. Without a token, the token from
	// the technician's order listing is used.
	OpenLinkQR(ctx context.Context, orderID, token string) (*entity.OpenLinkQR, error)
}
