package session

import (
	"os"
	"path/filepath"
	"testing"

	"fieldservice/config"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *entity.Session {
	return &entity.Session{AccessToken: "acc", RefreshToken: "ref", Role: entity.RoleTechnician}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Write(sample()))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := reopened.Read()
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ReadMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	got, err := store.Read()
	require.NoError(t, err)
	assert.False(t, got.IsAuthenticated())
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Read()
	assert.Error(t, err)
}

func TestStores_ClearRemovesEverything(t *testing.T) {
	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	stores := map[string]service.SessionStore{
		"file":   fileStore,
		"memory": NewMemoryStore(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Write(sample()))
			require.NoError(t, store.Clear())
			require.NoError(t, store.Clear())

			got, err := store.Read()
			require.NoError(t, err)
			assert.Empty(t, got.AccessToken)
			assert.Empty(t, got.RefreshToken)
			assert.Empty(t, got.Role)
		})
	}
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write(sample()))

	got, err := store.Read()
	require.NoError(t, err)
	got.AccessToken = "changed"

	again, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "acc", again.AccessToken)
}

func TestNewStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Store = "memory"
	store, err := NewStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	cfg.Session.Store = "file"
	cfg.Session.Path = filepath.Join(t.TempDir(), "s.json")
	store, err = NewStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	cfg.Session.Store = "redis"
	_, err = NewStore(cfg)
	assert.Error(t, err)
}
