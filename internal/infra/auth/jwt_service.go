// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"
)

// jwtInspector is a concrete implementation of the TokenInspector interface using the JWT standard.
// Tokens are parsed without signature verification: the signing secret lives on the order server.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// SessionClaims reads the subject, role and expiry of a login access token.
func (s *jwtInspector) SessionClaims(accessToken string) (*service.SessionClaims, error) {
	claims, err := s.parse(accessToken)
	if err != nil {
		return nil, err
	}

	result := &service.SessionClaims{
		ExpiresAt: numericTime(claims.GetExpirationTime()),
	}

	// simplejwt puts the user id in "user_id"; fall back to the registered "sub" claim.
	if uid, ok := claims["user_id"]; ok {
		result.Subject = stringify(uid)
	} else if sub, err := claims.GetSubject(); err == nil {
		result.Subject = sub
	}

	if role, ok := claims["role"].(string); ok {
		result.Role = entity.Role(role)
	}

	return result, nil
}

// OrderClaims reads the order uuid, technician and validity window of an order token.
func (s *jwtInspector) OrderClaims(orderToken string) (*entity.OrderTokenClaims, error) {
	claims, err := s.parse(orderToken)
	if err != nil {
		return nil, err
	}

	result := &entity.OrderTokenClaims{
		IssuedAt:  numericTime(claims.GetIssuedAt()),
		ExpiresAt: numericTime(claims.GetExpirationTime()),
	}
	if uuidOrder, ok := claims["uuid_order"].(string); ok {
		result.UUIDOrder = uuidOrder
	}
	if tech, ok := claims["technician_id"]; ok {
		id, err := strconv.ParseInt(stringify(tech), 10, 64)
		if err == nil {
			result.TechnicianID = id
		}
	}

	return result, nil
}

func (s *jwtInspector) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token claims")
	}

	return claims, nil
}

func numericTime(date *jwt.NumericDate, err error) *time.Time {
	if err != nil || date == nil {
		return nil
	}
	t := date.Time

	return &t
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
