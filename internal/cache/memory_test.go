package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore(100, time.Minute)
	ctx := context.Background()
	key := Key(uuid.New(), OpGetByID, uuid.New())

	_, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, key, []byte(`{"name":"Aspirin"}`)))

	value, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"name":"Aspirin"}`), value)
}

func TestMemoryStore_DeleteByPrefix_TenantScoped(t *testing.T) {
	store := NewMemoryStore(100, time.Minute)
	ctx := context.Background()
	tenantA := uuid.New()
	tenantB := uuid.New()

	keyA := Key(tenantA, OpStatistics)
	keyB := Key(tenantB, OpStatistics)
	require.NoError(t, store.Set(ctx, keyA, []byte("a")))
	require.NoError(t, store.Set(ctx, keyB, []byte("b")))

	// Evicting tenant A must not touch tenant B's entries.
	require.NoError(t, store.DeleteByPrefix(ctx, TenantPrefix(tenantA)))

	_, found, err := store.Get(ctx, keyA)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.Get(ctx, keyB)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemoryStore_Flush(t *testing.T) {
	store := NewMemoryStore(100, time.Minute)
	ctx := context.Background()

	keys := []string{
		Key(uuid.New(), OpSearch, "gel"),
		Key(uuid.New(), OpStatistics),
		Key(uuid.New(), OpGetByID, uuid.New()),
	}
	for _, k := range keys {
		require.NoError(t, store.Set(ctx, k, []byte("x")))
	}

	require.NoError(t, store.Flush(ctx))

	for _, k := range keys {
		_, found, err := store.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, found)
	}
}
