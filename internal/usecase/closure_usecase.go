package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// ClosureWizard collects closure evidence for one order and submits it.
//
//	CHOOSING -> FAILING | SUCCEEDING -> SUBMITTING -> CHOOSING
//
// A wizard without an order id is stuck in MISSING_PARAMETER.
type ClosureWizard interface {
	// Open is the entry action: it notifies the server the order was started, once.
	Open(ctx context.Context) error
	// AwaitStart waits for the start notification sent by Open, if any.
	AwaitStart(ctx context.Context) error
	Choose(outcome entity.ClosureOutcome) error
	Back() error

	// Submit merges input into the held fields, validates them and sends exactly
	// one closure request. It returns the server's confirmation message.
	Submit(ctx context.Context, input entity.ClosureInput) (string, error)
	View() entity.WizardView

	// Close abandons in-flight work; late results are not applied.
	Close()
}
