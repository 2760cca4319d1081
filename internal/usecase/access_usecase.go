package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// AccessValidator confirms an order-scoped token with the server, once per
// (order id, token) pair. Terminal outcomes are reported in the returned state.
// A pair is only settled by a server answer: when the caller's context ends or
// the server cannot be reached, the same pair may be validated again. The error
// is reserved for a torn-down validator or a cancelled caller.
type AccessValidator interface {
	Validate(ctx context.Context, orderID, token string) (entity.AccessState, error)
	State() entity.AccessState

	// Token returns the token of the last pair that reached READY.
	Token() string

	// Close abandons any in-flight validation; its result is discarded.
	Close()
}
