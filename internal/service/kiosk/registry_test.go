package kiosk

import (
	"context"
	"testing"

	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetReusesKiosk(t *testing.T) {
	r := NewRegistry(storage.MemoryFactory(), testDeps(&recordingSink{}))
	defer r.Close()

	a := r.Get("kiosk-a")
	assert.Same(t, a, r.Get("kiosk-a"))
	assert.NotSame(t, a, r.Get("kiosk-b"))

	_, ok := r.Lookup("kiosk-c")
	assert.False(t, ok)
}

func TestRegistry_RemoveKeepsPersistedState(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(storage.MemoryFactory(), testDeps(&recordingSink{}))
	defer r.Close()

	k := r.Get("kiosk-a")
	_, err := k.Mount(ctx, InitialView{})
	require.NoError(t, err)
	_, err = k.AddToRoute(ctx, "kruger")
	require.NoError(t, err)
	session := k.Snapshot().SessionID

	assert.True(t, r.Remove("kiosk-a"))
	assert.False(t, r.Remove("kiosk-a"))
	k.Wait()

	fresh := r.Get("kiosk-a")
	assert.NotSame(t, k, fresh)
	_, err = fresh.Mount(ctx, InitialView{})
	require.NoError(t, err)
	assert.Equal(t, session, fresh.Snapshot().SessionID)
	assert.Equal(t, []string{"kruger"}, fresh.Snapshot().Route)
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry(storage.MemoryFactory(), testDeps(&recordingSink{}))
	k := r.Get("kiosk-a")
	_, err := k.Mount(context.Background(), InitialView{})
	require.NoError(t, err)

	r.Close()

	_, err = k.Back(context.Background())
	assert.ErrorIs(t, err, ErrNotMounted)
	_, ok := r.Lookup("kiosk-a")
	assert.False(t, ok)
}
