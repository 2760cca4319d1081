package impl

import (
	"context"
	"testing"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	mockservice "fieldservice/internal/mocks/service"
	"fieldservice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	service usecase.OrderUsecase
	gateway *mockservice.MockOrderGateway
	qrCodes *mockservice.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderFixtures {
	gateway := mockservice.NewMockOrderGateway(t)
	qrCodes := mockservice.NewMockQRCodeService(t)

	srv := NewOrderService(OrderServiceParams{
		Gateway: gateway,
		QRCodes: qrCodes,
		Logger:  discardLogger(),
	})

	return orderFixtures{service: srv, gateway: gateway, qrCodes: qrCodes}
}

func sampleOrders() []*entity.Order {
	return []*entity.Order{
		{ID: 1, Status: entity.OrderStatusPending, JWTToken: "tok-1"},
		{ID: 2, Status: entity.OrderStatusCompleted},
		{ID: 3, Status: entity.OrderStatusPending, JWTToken: "tok-3"},
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.OrderFilter
		want   []int64
	}{
		{name: "all", want: []int64{1, 2, 3}},
		{name: "by status", filter: entity.OrderFilter{Status: entity.OrderStatusPending}, want: []int64{1, 3}},
		{name: "by id", filter: entity.OrderFilter{ID: "2"}, want: []int64{2}},
		{name: "no match", filter: entity.OrderFilter{ID: "2", Status: entity.OrderStatusPending}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.gateway.EXPECT().ListOrders(context.Background()).Return(sampleOrders(), nil).Once()

			orders, err := fx.service.ListOrders(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(orders))
			for _, o := range orders {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestOrderService_GetOrder_MissingID(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.GetOrder(context.Background(), " ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingParameter)
}

func TestOrderService_CreateOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	want := entity.NewOrder{TechnicianID: 7, TechnicianName: "Luis Rojas", Hours: 1}
	fx.gateway.EXPECT().CreateOrder(ctx, want).Return(&entity.Order{ID: 9, TechnicianID: 7}, nil).Once()

	order, err := fx.service.CreateOrder(ctx, entity.NewOrder{TechnicianID: 7, TechnicianName: " Luis Rojas "})
	require.NoError(t, err)
	assert.Equal(t, int64(9), order.ID)
}

func TestOrderService_CreateOrder_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		order entity.NewOrder
	}{
		{name: "no technician", order: entity.NewOrder{TechnicianName: "Luis", Hours: 2}},
		{name: "no name", order: entity.NewOrder{TechnicianID: 7, Hours: 2}},
		{name: "negative hours", order: entity.NewOrder{TechnicianID: 7, TechnicianName: "Luis", Hours: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.CreateOrder(context.Background(), tt.order)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_Stats(t *testing.T) {
	fx := createTestOrderService(t)

	fx.gateway.EXPECT().Stats(context.Background()).Return(&entity.Stats{
		TotalOrders:    5,
		TotalEvidences: 8,
		ByStatus:       map[string]int{"pending": 2, "completed": 3},
	}, nil).Once()

	stats, err := fx.service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.TotalOrders, stats.StatusTotal())
	assert.NotNil(t, stats.ByTechnician)
}

func TestOrderService_OpenLinkQR(t *testing.T) {
	t.Run("explicit token", func(t *testing.T) {
		fx := createTestOrderService(t)
		target := entity.NavigationTarget{OrderID: "1", Token: "abc"}

		fx.qrCodes.EXPECT().GenerateOpenLinkQR(target).Return([]byte("png"), nil).Once()
		fx.qrCodes.EXPECT().OpenLink(target).Return("https://app/open?id=1#jwt=abc").Once()

		qr, err := fx.service.OpenLinkQR(context.Background(), "1", "abc")
		require.NoError(t, err)
		assert.Equal(t, "https://app/open?id=1#jwt=abc", qr.Link)
		assert.Equal(t, []byte("png"), qr.PNG)
	})

	t.Run("token from listing", func(t *testing.T) {
		fx := createTestOrderService(t)
		target := entity.NavigationTarget{OrderID: "3", Token: "tok-3"}

		fx.gateway.EXPECT().ListOrders(context.Background()).Return(sampleOrders(), nil).Once()
		fx.qrCodes.EXPECT().GenerateOpenLinkQR(target).Return([]byte("png"), nil).Once()
		fx.qrCodes.EXPECT().OpenLink(target).Return("link").Once()

		qr, err := fx.service.OpenLinkQR(context.Background(), "3", "")
		require.NoError(t, err)
		assert.Equal(t, "link", qr.Link)
	})

	t.Run("no listed token", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.gateway.EXPECT().ListOrders(context.Background()).Return(sampleOrders(), nil).Once()

		_, err := fx.service.OpenLinkQR(context.Background(), "2", "")
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	})
}
