package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// WorkflowUsecase keeps one access validator and closure wizard per opened order
// view. A view opened through a gateway session is only reachable from that session.
type WorkflowUsecase interface {
	OpenView(ctx context.Context, orderID string) (*entity.OrderView, error)
	GetView(ctx context.Context, viewID string) (*entity.OrderView, error)
	ValidateAccess(ctx context.Context, viewID, token string) (*entity.OrderView, error)
	Choose(ctx context.Context, viewID string, outcome entity.ClosureOutcome) (*entity.OrderView, error)
	Back(ctx context.Context, viewID string) (*entity.OrderView, error)
	Submit(ctx context.Context, viewID string, input entity.ClosureInput) (*entity.OrderView, error)

	// AwaitStart waits until the view's start notification has been sent.
	AwaitStart(ctx context.Context, viewID string) error
	CloseView(ctx context.Context, viewID string) error

	// Close tears down every open view.
	Close()
}
