package service

import (
	"time"

	"fieldservice/internal/domain/entity"
)

// SessionClaims are the readable claims of a login access token.
type SessionClaims struct {
	Subject   string
	Role      entity.Role
	ExpiresAt *time.Time
}

// TokenInspector reads JWT claims without verifying signatures. The client never
// holds the signing keys; the order server verifies every token it receives.
type TokenInspector interface {
	// SessionClaims reads the claims of a login access token.
	SessionClaims(accessToken string) (*SessionClaims, error)

	// OrderClaims reads the claims of an order-scoped bearer token.
	OrderClaims(orderToken string) (*entity.OrderTokenClaims, error)
}
