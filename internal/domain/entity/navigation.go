package entity

import (
	"net/url"
	"time"
)

// NavigationTarget is where a successful QR scan sends the technician.
type NavigationTarget struct {
	OrderID string `json:"order_id"`
	Token   string `json:"jwt"`
}

// Path returns the order-access route. The token is carried in the fragment so
// it never reaches a server access log or a Referer header.
func (t NavigationTarget) Path() string {
	return "/orders/" + url.PathEscape(t.OrderID) + "/open#jwt=" + url.QueryEscape(t.Token)
}

// AccessPhase is a state of the order-access validator.
type AccessPhase string

const (
	AccessIdle               AccessPhase = "IDLE"
	AccessValidating         AccessPhase = "VALIDATING"
	AccessReady              AccessPhase = "READY"
	AccessFailed             AccessPhase = "FAILED"
	AccessMissingCredentials AccessPhase = "MISSING_CREDENTIALS"
)

// IsTerminal reports whether the validator will not change phase for the same inputs.
func (p AccessPhase) IsTerminal() bool {
	return p == AccessReady || p == AccessFailed || p == AccessMissingCredentials
}

// AccessState is the observable state of an order-access validation.
type AccessState struct {
	Phase   AccessPhase       `json:"phase"`
	OrderID string            `json:"order_id,omitempty"`
	Order   *Order            `json:"order,omitempty"`
	Claims  *OrderTokenClaims `json:"claims,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// OrderView is one opened order: its access validation and closure wizard.
type OrderView struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"order_id"`
	CreatedAt time.Time   `json:"created_at"`
	Access    AccessState `json:"access"`
	Wizard    WizardView  `json:"wizard"`
}
