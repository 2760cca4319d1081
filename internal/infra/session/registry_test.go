package session

import (
	"testing"
	"time"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SeparatesClients(t *testing.T) {
	registry := NewRegistry(0)

	adminID, err := registry.Create(&entity.Session{AccessToken: "adm", Role: entity.RoleAdmin})
	require.NoError(t, err)
	techID, err := registry.Create(&entity.Session{AccessToken: "tec", Role: entity.RoleTechnician})
	require.NoError(t, err)
	assert.NotEqual(t, adminID, techID)

	admin, err := registry.Get(adminID)
	require.NoError(t, err)
	assert.Equal(t, "adm", admin.AccessToken)

	tech, err := registry.Get(techID)
	require.NoError(t, err)
	assert.Equal(t, "tec", tech.AccessToken)

	_, err = registry.Get("")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	_, err = registry.Get("guess")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	registry := NewRegistry(0)
	original := &entity.Session{AccessToken: "a", Role: entity.RoleAdmin}
	id, err := registry.Create(original)
	require.NoError(t, err)

	original.AccessToken = "changed"
	got, err := registry.Get(id)
	require.NoError(t, err)
	got.Role = entity.RoleTechnician

	again, err := registry.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "a", again.AccessToken)
	assert.Equal(t, entity.RoleAdmin, again.Role)
}

func TestRegistry_UpdateAndDelete(t *testing.T) {
	registry := NewRegistry(0)
	id, err := registry.Create(&entity.Session{AccessToken: "old", RefreshToken: "r"})
	require.NoError(t, err)

	require.NoError(t, registry.Update(id, &entity.Session{AccessToken: "new", RefreshToken: "r"}))
	got, err := registry.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)

	require.NoError(t, registry.Delete(id))
	_, err = registry.Get(id)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, registry.Update(id, got), domainerrors.ErrUnauthenticated)
	assert.NoError(t, registry.Delete(id))
}

func TestRegistry_IdleTimeout(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	registry := NewRegistry(time.Hour)
	registry.now = func() time.Time { return now }

	busy, err := registry.Create(&entity.Session{AccessToken: "busy"})
	require.NoError(t, err)
	idle, err := registry.Create(&entity.Session{AccessToken: "idle"})
	require.NoError(t, err)

	now = now.Add(40 * time.Minute)
	_, err = registry.Get(busy)
	require.NoError(t, err)

	now = now.Add(40 * time.Minute)
	_, err = registry.Get(busy)
	require.NoError(t, err)
	_, err = registry.Get(idle)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	now = now.Add(2 * time.Hour)
	_, err = registry.Create(&entity.Session{AccessToken: "next"})
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_RejectsEmptySession(t *testing.T) {
	_, err := NewRegistry(0).Create(&entity.Session{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
