package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.db")

	backend, err := OpenSQLite(path)
	require.NoError(t, err)
	defer backend.Close()

	_, err = backend.Load(CollectionClients)
	assert.ErrorIs(t, err, ErrCollectionNotFound)

	payload := []byte(`[{"id":"1","name":"María González"}]`)
	require.NoError(t, backend.Save(CollectionClients, payload))

	got, err := backend.Load(CollectionClients)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Save fully replaces the previous contents of the key.
	replacement := []byte(`[]`)
	require.NoError(t, backend.Save(CollectionClients, replacement))
	got, err = backend.Load(CollectionClients)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestSQLiteBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.db")

	backend, err := OpenSQLite(path)
	require.NoError(t, err)

	payload := []byte(`[{"id":"t1","amount":100}]`)
	require.NoError(t, backend.Save(CollectionTransactions, payload))
	require.NoError(t, backend.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(CollectionTransactions)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
