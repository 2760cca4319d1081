// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Session is the login state of the current process. It is created on login,
// persisted between runs and cleared as a whole on logout.
type Session struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	Role         Role   `json:"role"`

	// AccessExpiresAt is read from the access token's exp claim when it has one.
	AccessExpiresAt *time.Time `json:"-"`
}

// IsAuthenticated reports whether an access token is present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.AccessToken != ""
}

// IsExpired reports whether the access token is known to be expired at now.
// Tokens without an exp claim never count as expired.
func (s *Session) IsExpired(now time.Time) bool {
	if s == nil || s.AccessExpiresAt == nil {
		return false
	}

	return !now.Before(*s.AccessExpiresAt)
}

// HasRole reports whether the session belongs to the given role.
func (s *Session) HasRole(role Role) bool {
	return s.IsAuthenticated() && s.Role == role
}

// Credentials are the username and password sent to the login endpoint.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the order server's answer to a successful login.
type LoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Role    Role   `json:"role"`
}
