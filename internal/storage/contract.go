package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract checks the behaviour every Store implementation must share.
func RunStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "contract_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeySessionID, "sess_1_abc"))
		v, err := store.Get(ctx, KeySessionID)
		require.NoError(t, err)
		assert.Equal(t, "sess_1_abc", v)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyRoute, `["kruger"]`))
		require.NoError(t, store.Set(ctx, KeyRoute, `["kruger","panorama"]`))
		v, err := store.Get(ctx, KeyRoute)
		require.NoError(t, err)
		assert.Equal(t, `["kruger","panorama"]`, v)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyUserName, "Thandi"))
		require.NoError(t, store.Delete(ctx, KeyUserName))
		_, err := store.Get(ctx, KeyUserName)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "contract_never_set"))
	})
}
