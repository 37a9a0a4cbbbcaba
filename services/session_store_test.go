package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "a", time.Hour))
	revoked, err = store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryRevocationStoreExpires(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "a", time.Minute))
	now = now.Add(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "b", time.Minute))
	assert.NotContains(t, store.revoked, "a")
}
