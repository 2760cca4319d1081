package entity

import (
	"strconv"
	"time"
)

// OrderStatus is the lifecycle state of an order. The server owns every transition.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusInUse     OrderStatus = "in_use"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusUsed      OrderStatus = "used"
)

// IsValid checks if the status is one the server emits.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInUse, OrderStatusCompleted,
		OrderStatusFailed, OrderStatusExpired, OrderStatusUsed:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the order can no longer be started or closed.
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusExpired, OrderStatusUsed:
		return true
	default:
		return false
	}
}

// Order is a unit of field work assigned to a technician.
type Order struct {
	ID             int64       `json:"id"`
	UUID           string      `json:"uuid_order"`
	TechnicianID   int64       `json:"technician"`
	TechnicianName string      `json:"technician_name"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	ExpiresAt      *time.Time  `json:"expires_at,omitempty"`
	ClosedAt       *time.Time  `json:"closed_at,omitempty"`
	ClosingReason  string      `json:"closing_reason,omitempty"`
	ClosingNotes   string      `json:"closing_notes,omitempty"`
	Evidences      []*Evidence `json:"evidences,omitempty"`

	// JWTToken is the order-scoped bearer, present only in technician listings.
	JWTToken string `json:"jwt_token,omitempty"`
}

// IDString returns the order id as used in URLs.
func (o *Order) IDString() string {
	return strconv.FormatInt(o.ID, 10)
}

// IsExpired reports whether the order's expiry has passed at now.
func (o *Order) IsExpired(now time.Time) bool {
	return o.ExpiresAt != nil && o.ExpiresAt.Before(now)
}

// OrderFilter narrows an order listing on the client side.
type OrderFilter struct {
	Status OrderStatus
	ID     string
}

// Match reports whether the order passes the filter.
func (f OrderFilter) Match(o *Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.ID != "" && o.IDString() != f.ID {
		return false
	}

	return true
}

// NewOrder holds the fields required to create an order.
type NewOrder struct {
	TechnicianID   int64  `json:"technician_id" validate:"required,gt=0"`
	TechnicianName string `json:"technician_name" validate:"required,max=150"`
	Hours          int    `json:"hours" validate:"gte=1"`
}

// OrderTokenClaims are the readable claims of an order-scoped bearer token.
// They are informational only: the server is the one that verifies the token.
type OrderTokenClaims struct {
	UUIDOrder    string     `json:"uuid_order,omitempty"`
	TechnicianID int64      `json:"technician_id,omitempty"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}
