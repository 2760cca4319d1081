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

// orderService implements the OrderUsecase interface.
type orderService struct {
	gateway  service.OrderGateway
	qrCodes  service.QRCodeService
	validate *validator.Validate
	logger   *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Gateway service.OrderGateway
	QRCodes service.QRCodeService
	Logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		gateway:  params.Gateway,
		qrCodes:  params.QRCodes,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the orders visible to the session, narrowed by filter.
func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	orders, err := srv.gateway.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Match(order) {
			matched = append(matched, order)
		}
	}
	srv.log(ctx).Debug("Orders listed", slog.Int("total", len(orders)), slog.Int("matched", len(matched)))

	return matched, nil
}

func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainerrors.ErrMissingParameter
	}

	order, err := srv.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %s", orderID)
	}

	return order, nil
}

// CreateOrder creates an order; hours defaults to one.
func (srv *orderService) CreateOrder(ctx context.Context, order entity.NewOrder) (*entity.Order, error) {
	if order.Hours == 0 {
		order.Hours = 1
	}
	order.TechnicianName = strings.TrimSpace(order.TechnicianName)
	if err := srv.validate.Struct(order); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	created, err := srv.gateway.CreateOrder(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	srv.log(ctx).Info("Order created", slog.Int64("order_id", created.ID), slog.Int64("technician_id", order.TechnicianID))

	return created, nil
}

func (srv *orderService) Audits(ctx context.Context, orderID string) ([]*entity.AuditEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainerrors.ErrMissingParameter
	}

	entries, err := srv.gateway.Audits(ctx, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "list audits of order %s", orderID)
	}

	return entries, nil
}

func (srv *orderService) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := srv.gateway.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch stats")
	}
	if stats.ByStatus == nil {
		stats.ByStatus = map[string]int{}
	}
	if stats.ByTechnician == nil {
		stats.ByTechnician = map[string]int{}
	}
	if total := stats.StatusTotal(); total != stats.TotalOrders {
		srv.log(ctx).Warn("Status breakdown does not match total orders",
			slog.Int("total_orders", stats.TotalOrders), slog.Int("status_total", total))
	}

	return stats, nil
}

func (srv *orderService) OpenLinkQR(ctx context.Context, orderID, token string) (*entity.OpenLinkQR, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainerrors.ErrMissingParameter
	}

	token = strings.TrimSpace(token)
	if token == "" {
		found, err := srv.listedToken(ctx, orderID)
		if err != nil {
			return nil, err
		}
		token = found
	}

	target := entity.NavigationTarget{OrderID: orderID, Token: token}
	png, err := srv.qrCodes.GenerateOpenLinkQR(target)
	if err != nil {
		return nil, errors.Wrap(err, "generate open link qr")
	}

	return &entity.OpenLinkQR{Link: srv.qrCodes.OpenLink(target), PNG: png}, nil
}

// listedToken finds the order token in the technician's own listing.
func (srv *orderService) listedToken(ctx context.Context, orderID string) (string, error) {
	orders, err := srv.ListOrders(ctx, entity.OrderFilter{ID: orderID})
	if err != nil {
		return "", err
	}
	for _, order := range orders {
		if order.JWTToken != "" {
			return order.JWTToken, nil
		}
	}

	return "", domainerrors.ErrMissingCredentials.WithDetails("no access token listed for order " + orderID)
}
