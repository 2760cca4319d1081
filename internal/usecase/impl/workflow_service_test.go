package impl

import (
	"context"
	"testing"
	"time"

	"fieldservice/config"
	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	mockservice "fieldservice/internal/mocks/service"
	"fieldservice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workflowFixtures struct {
	service usecase.WorkflowUsecase
	gateway *mockservice.MockOrderGateway
	tokens  *mockservice.MockTokenInspector
}

func createTestWorkflowService(t *testing.T, opts ...func(*config.Config)) workflowFixtures {
	gateway := mockservice.NewMockOrderGateway(t)
	tokens := mockservice.NewMockTokenInspector(t)

	cfg := &config.Config{}
	cfg.Closure.Justifications = testJustifications
	for _, opt := range opts {
		opt(cfg)
	}

	srv := NewWorkflowService(WorkflowServiceParams{
		Gateway: gateway,
		Tokens:  tokens,
		Config:  cfg,
		Logger:  discardLogger(),
	})
	t.Cleanup(srv.Close)

	return workflowFixtures{service: srv, gateway: gateway, tokens: tokens}
}

// expectStart registers the start notification and returns a channel closed once it is sent.
func (fx workflowFixtures) expectStart(orderID string) <-chan struct{} {
	started := make(chan struct{})
	fx.gateway.EXPECT().StartOrder(mock.Anything, orderID).
		RunAndReturn(func(context.Context, string) error {
			close(started)

			return nil
		}).Once()

	return started
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

func TestWorkflowService_OpenView(t *testing.T) {
	fx := createTestWorkflowService(t)
	started := fx.expectStart("42")

	view, err := fx.service.OpenView(context.Background(), "42")
	require.NoError(t, err)
	waitFor(t, started)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "42", view.OrderID)
	assert.Equal(t, entity.AccessIdle, view.Access.Phase)
	assert.Equal(t, entity.WizardChoosing, view.Wizard.State)
	assert.Equal(t, []string(testJustifications), view.Wizard.Justifications)

	got, err := fx.service.GetView(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
}

func TestWorkflowService_OpenViewWithoutOrder(t *testing.T) {
	fx := createTestWorkflowService(t)

	view, err := fx.service.OpenView(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, entity.WizardMissingParameter, view.Wizard.State)
}

func TestWorkflowService_UnknownView(t *testing.T) {
	fx := createTestWorkflowService(t)
	ctx := context.Background()

	_, err := fx.service.GetView(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	_, err = fx.service.ValidateAccess(ctx, "nope", "abc")
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	assert.ErrorIs(t, fx.service.CloseView(ctx, "nope"), domainerrors.ErrViewNotFound)
}

func TestWorkflowService_ChooseRequiresAccess(t *testing.T) {
	fx := createTestWorkflowService(t)
	started := fx.expectStart("42")

	view, err := fx.service.OpenView(context.Background(), "42")
	require.NoError(t, err)
	waitFor(t, started)

	_, err = fx.service.Choose(context.Background(), view.ID, entity.OutcomeFailed)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = fx.service.Submit(context.Background(), view.ID, entity.ClosureInput{Token: "abc", Photo: photo()})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestWorkflowService_CloseOrderWithValidatedToken(t *testing.T) {
	fx := createTestWorkflowService(t)
	ctx := context.Background()
	started := fx.expectStart("42")

	view, err := fx.service.OpenView(ctx, "42")
	require.NoError(t, err)
	waitFor(t, started)

	fx.gateway.EXPECT().ValidateToken(mock.Anything, "42", "abc").Return(&entity.Order{ID: 42}, nil).Once()
	fx.tokens.EXPECT().OrderClaims("abc").Return(&entity.OrderTokenClaims{TechnicianID: 7}, nil).Once()

	view, err = fx.service.ValidateAccess(ctx, view.ID, "abc")
	require.NoError(t, err)
	assert.Equal(t, entity.AccessReady, view.Access.Phase)

	view, err = fx.service.Choose(ctx, view.ID, entity.OutcomeFailed)
	require.NoError(t, err)
	assert.Equal(t, entity.WizardFailing, view.Wizard.State)

	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.MatchedBy(func(s *entity.ClosureSubmission) bool {
		return s.Fields()["jwt"] == "abc"
	})).Return("Order closed as failed", nil).Once()

	view, err = fx.service.Submit(ctx, view.ID, entity.ClosureInput{Photo: photo()})
	require.NoError(t, err)
	assert.Equal(t, entity.WizardChoosing, view.Wizard.State)
	assert.Equal(t, "Order closed as failed", view.Wizard.Message)
}

func TestWorkflowService_CloseView(t *testing.T) {
	fx := createTestWorkflowService(t)
	ctx := context.Background()
	started := fx.expectStart("42")

	view, err := fx.service.OpenView(ctx, "42")
	require.NoError(t, err)
	waitFor(t, started)

	require.NoError(t, fx.service.CloseView(ctx, view.ID))

	_, err = fx.service.GetView(ctx, view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
}

func TestWorkflowService_CloseRejectsNewViews(t *testing.T) {
	fx := createTestWorkflowService(t)

	fx.service.Close()

	_, err := fx.service.OpenView(context.Background(), "42")
	assert.ErrorIs(t, err, domainerrors.ErrViewClosed)
}

func TestWorkflowService_ViewsBelongToTheirSession(t *testing.T) {
	fx := createTestWorkflowService(t)
	started := fx.expectStart("42")
	ana := deliverycontext.WithSessionID(context.Background(), "sid-ana")
	luis := deliverycontext.WithSessionID(context.Background(), "sid-luis")

	view, err := fx.service.OpenView(ana, "42")
	require.NoError(t, err)
	waitFor(t, started)

	_, err = fx.service.GetView(luis, view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	_, err = fx.service.ValidateAccess(luis, view.ID, "abc")
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	assert.ErrorIs(t, fx.service.CloseView(luis, view.ID), domainerrors.ErrViewNotFound)

	_, err = fx.service.GetView(ana, view.ID)
	require.NoError(t, err)
	require.NoError(t, fx.service.CloseView(ana, view.ID))
}

func TestWorkflowService_StartUsesCallerBearer(t *testing.T) {
	fx := createTestWorkflowService(t)

	release := make(chan struct{})
	got := make(chan error, 1)
	fx.gateway.EXPECT().StartOrder(mock.Anything, "42").
		RunAndReturn(func(ctx context.Context, _ string) error {
			<-release
			if token := deliverycontext.GetAccessToken(ctx); token != "tec-token" {
				got <- errors.Errorf("bearer %q", token)

				return nil
			}
			got <- ctx.Err()

			return nil
		}).Once()

	reqCtx, cancel := context.WithCancel(deliverycontext.WithAccessToken(context.Background(), "tec-token"))
	view, err := fx.service.OpenView(reqCtx, "42")
	require.NoError(t, err)

	// the opening request finishing does not abandon the notification
	cancel()
	close(release)
	require.NoError(t, <-got)
	require.NoError(t, fx.service.AwaitStart(context.Background(), view.ID))
}

func TestWorkflowService_AwaitStart(t *testing.T) {
	fx := createTestWorkflowService(t)
	ctx := context.Background()

	release := make(chan struct{})
	fx.gateway.EXPECT().StartOrder(mock.Anything, "42").
		RunAndReturn(func(context.Context, string) error {
			<-release

			return nil
		}).Once()

	view, err := fx.service.OpenView(ctx, "42")
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, fx.service.AwaitStart(short, view.ID), context.DeadlineExceeded)

	close(release)
	require.NoError(t, fx.service.AwaitStart(ctx, view.ID))

	missing, err := fx.service.OpenView(ctx, "")
	require.NoError(t, err)
	assert.NoError(t, fx.service.AwaitStart(ctx, missing.ID))
}

func TestWorkflowService_EvictsIdleViews(t *testing.T) {
	fx := createTestWorkflowService(t, func(cfg *config.Config) {
		cfg.Closure.ViewIdleTimeout = time.Hour
	})
	srv, ok := fx.service.(*workflowService)
	require.True(t, ok)
	fx.gateway.EXPECT().StartOrder(mock.Anything, mock.Anything).Return(nil).Maybe()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }
	ctx := context.Background()

	busy, err := fx.service.OpenView(ctx, "1")
	require.NoError(t, err)
	abandoned, err := fx.service.OpenView(ctx, "2")
	require.NoError(t, err)

	now = now.Add(40 * time.Minute)
	_, err = fx.service.GetView(ctx, busy.ID)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	srv.sweep()

	_, err = fx.service.GetView(ctx, busy.ID)
	assert.NoError(t, err)
	_, err = fx.service.GetView(ctx, abandoned.ID)
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
}

func TestWorkflowService_CapEvictsLeastRecentlyUsed(t *testing.T) {
	fx := createTestWorkflowService(t, func(cfg *config.Config) {
		cfg.Closure.MaxViews = 2
	})
	srv, ok := fx.service.(*workflowService)
	require.True(t, ok)
	fx.gateway.EXPECT().StartOrder(mock.Anything, mock.Anything).Return(nil).Maybe()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time {
		now = now.Add(time.Second)

		return now
	}
	ctx := context.Background()

	first, err := fx.service.OpenView(ctx, "1")
	require.NoError(t, err)
	second, err := fx.service.OpenView(ctx, "2")
	require.NoError(t, err)
	_, err = fx.service.GetView(ctx, first.ID)
	require.NoError(t, err)

	third, err := fx.service.OpenView(ctx, "3")
	require.NoError(t, err)

	_, err = fx.service.GetView(ctx, second.ID)
	assert.ErrorIs(t, err, domainerrors.ErrViewNotFound)
	for _, id := range []string{first.ID, third.ID} {
		_, err = fx.service.GetView(ctx, id)
		assert.NoError(t, err)
	}
}
