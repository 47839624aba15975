package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "profile.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	_, err := os.Stat(dbPath)
	assert.NoError(t, err, "database file and parent directories are created")
}

func TestStoreDefaults(t *testing.T) {
	store, _ := openTestStore(t)

	p, err := store.LoadProfile()
	require.NoError(t, err)

	assert.Zero(t, p.Lives, "fresh profile starts over")
	assert.True(t, p.AudioEnabled)
}

func TestStoreLives(t *testing.T) {
	store, _ := openTestStore(t)

	require.NoError(t, store.SaveLives(2))
	lives, err := store.LoadLives()
	require.NoError(t, err)
	assert.Equal(t, 2, lives)

	require.NoError(t, store.SaveLives(0))
	lives, err = store.LoadLives()
	require.NoError(t, err)
	assert.Zero(t, lives)
}

func TestStoreAudioEnabled(t *testing.T) {
	store, _ := openTestStore(t)

	require.NoError(t, store.SaveAudioEnabled(false))
	p, err := store.LoadProfile()
	require.NoError(t, err)
	assert.False(t, p.AudioEnabled)

	require.NoError(t, store.SaveAudioEnabled(true))
	p, err = store.LoadProfile()
	require.NoError(t, err)
	assert.True(t, p.AudioEnabled)
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "profile.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveLives(1))
	require.NoError(t, store.SaveAudioEnabled(false))
	require.NoError(t, store.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	p, err := reopened.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, Profile{Lives: 1, AudioEnabled: false}, p)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(3)

	lives, err := m.LoadLives()
	require.NoError(t, err)
	assert.Equal(t, 3, lives)

	require.NoError(t, m.SaveLives(1))
	require.NoError(t, m.SaveAudioEnabled(false))

	p, err := m.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, Profile{Lives: 1, AudioEnabled: false}, p)
}
