package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	mockservice "fieldservice/internal/mocks/service"
	"fieldservice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clientSessionFixtures struct {
	service  usecase.ClientSessionUsecase
	gateway  *mockservice.MockAuthGateway
	registry *mockservice.MockSessionRegistry
	tokens   *mockservice.MockTokenInspector
}

func createTestClientSessionService(t *testing.T) clientSessionFixtures {
	gateway := mockservice.NewMockAuthGateway(t)
	registry := mockservice.NewMockSessionRegistry(t)
	tokens := mockservice.NewMockTokenInspector(t)

	srv := NewClientSessionService(ClientSessionServiceParams{
		Gateway:  gateway,
		Registry: registry,
		Tokens:   tokens,
		Logger:   discardLogger(),
	})

	return clientSessionFixtures{service: srv, gateway: gateway, registry: registry, tokens: tokens}
}

func TestClientSessionService_Login(t *testing.T) {
	fx := createTestClientSessionService(t)
	ctx := context.Background()
	creds := entity.Credentials{Username: "ana", Password: "secret"}
	exp := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	fx.gateway.EXPECT().Login(ctx, creds).
		Return(&entity.LoginResult{Access: "acc", Refresh: "ref", Role: entity.RoleAdmin}, nil).Once()
	fx.tokens.EXPECT().SessionClaims("acc").Return(&service.SessionClaims{ExpiresAt: &exp}, nil).Once()
	fx.registry.EXPECT().Create(mock.MatchedBy(func(s *entity.Session) bool {
		return s.AccessToken == "acc" && s.RefreshToken == "ref" && s.Role == entity.RoleAdmin
	})).Return("sid-1", nil).Once()

	id, session, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", id)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	require.NotNil(t, session.AccessExpiresAt)
	assert.Equal(t, exp, *session.AccessExpiresAt)

	// no shared bearer is ever attached
	fx.gateway.AssertNotCalled(t, "SetAuth", mock.Anything)
}

func TestClientSessionService_Login_Rejected(t *testing.T) {
	fx := createTestClientSessionService(t)
	ctx := context.Background()
	creds := entity.Credentials{Username: "ana", Password: "bad"}

	fx.gateway.EXPECT().Login(ctx, creds).
		Return(nil, domainerrors.NewUpstreamError(http.StatusUnauthorized, "Credenciales inválidas", nil)).Once()

	_, _, err := fx.service.Login(ctx, creds)
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", domainerrors.UserMessage(err, ""))
	fx.registry.AssertNotCalled(t, "Create", mock.Anything)
}

func TestClientSessionService_Login_MissingInput(t *testing.T) {
	fx := createTestClientSessionService(t)

	_, _, err := fx.service.Login(context.Background(), entity.Credentials{Username: "ana"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingInput)
}

func TestClientSessionService_Resolve(t *testing.T) {
	fx := createTestClientSessionService(t)
	ctx := context.Background()

	_, err := fx.service.Resolve(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	fx.registry.EXPECT().Get("unknown").Return(nil, domainerrors.ErrUnauthenticated).Once()
	_, err = fx.service.Resolve(ctx, "unknown")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	fx.registry.EXPECT().Get("sid-1").Return(&entity.Session{AccessToken: "acc", Role: entity.RoleTechnician}, nil).Once()
	session, err := fx.service.Resolve(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "acc", session.AccessToken)
}

func TestClientSessionService_Refresh(t *testing.T) {
	fx := createTestClientSessionService(t)
	ctx := context.Background()

	fx.registry.EXPECT().Get("sid-1").
		Return(&entity.Session{AccessToken: "old", RefreshToken: "ref", Role: entity.RoleTechnician}, nil).Once()
	fx.gateway.EXPECT().Refresh(ctx, "ref").Return("new", nil).Once()
	fx.tokens.EXPECT().SessionClaims("new").Return(nil, assert.AnError).Once()
	fx.registry.EXPECT().Update("sid-1", mock.MatchedBy(func(s *entity.Session) bool {
		return s.AccessToken == "new" && s.RefreshToken == "ref"
	})).Return(nil).Once()

	session, err := fx.service.Refresh(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "new", session.AccessToken)
}

func TestClientSessionService_Refresh_NoRefreshToken(t *testing.T) {
	fx := createTestClientSessionService(t)

	fx.registry.EXPECT().Get("sid-1").Return(&entity.Session{AccessToken: "acc"}, nil).Once()

	_, err := fx.service.Refresh(context.Background(), "sid-1")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenMissing)
}

func TestClientSessionService_Logout(t *testing.T) {
	fx := createTestClientSessionService(t)

	fx.registry.EXPECT().Delete("sid-1").Return(nil).Once()

	require.NoError(t, fx.service.Logout(context.Background(), "sid-1"))
}
