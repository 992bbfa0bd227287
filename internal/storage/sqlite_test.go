package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Contract(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	RunStoreContract(t, NewSQLiteStore(db, "kiosk-local"))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kiosk", "kiosk.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db, "kiosk-local").Set(ctx, KeyRoute, `["kruger"]`))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	v, err := SQLiteFactory(db)("kiosk-local").Get(ctx, KeyRoute)
	require.NoError(t, err)
	assert.Equal(t, `["kruger"]`, v)

	_, err = NewSQLiteStore(db, "kiosk-other").Get(ctx, KeyRoute)
	assert.ErrorIs(t, err, ErrNotFound)
}
