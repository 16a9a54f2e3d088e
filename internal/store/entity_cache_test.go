package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestCache(t *testing.T) (*miniredis.Miniredis, *EntityCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewEntityCache(NewRedisKV(client), time.Minute, zap.NewNop())
}

type cachedTenant struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cache:tenants:7:all", Key(EntityTenants, 7, ""))
	assert.Equal(t, "cache:units:7:status=VACANT", Key(EntityUnits, 7, "status=VACANT"))
}

func TestEntityCache_LoadMiss(t *testing.T) {
	_, c := setupTestCache(t)

	var out []cachedTenant
	ok, err := c.Load(context.Background(), EntityTenants, 1, "", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntityCache_SaveLoad(t *testing.T) {
	mr, c := setupTestCache(t)
	ctx := context.Background()

	in := []cachedTenant{{ID: 1, Name: "John"}}
	require.NoError(t, c.Save(ctx, EntityTenants, 1, "", in))

	var out []cachedTenant
	ok, err := c.Load(ctx, EntityTenants, 1, "", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)

	assert.Equal(t, time.Minute, mr.TTL(Key(EntityTenants, 1, "")))
}

func TestEntityCache_InvalidateWholesale(t *testing.T) {
	mr, c := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, EntityTenants, 1, "", []int{1}))
	require.NoError(t, c.Save(ctx, EntityTenants, 2, "", []int{2}))
	require.NoError(t, c.Save(ctx, EntityTenants, 1, "id=3", 3))
	require.NoError(t, c.Save(ctx, EntityUnits, 1, "", []int{4}))

	require.NoError(t, c.Invalidate(ctx, EntityTenants))

	assert.False(t, mr.Exists(Key(EntityTenants, 1, "")))
	assert.False(t, mr.Exists(Key(EntityTenants, 2, "")))
	assert.False(t, mr.Exists(Key(EntityTenants, 1, "id=3")))
	assert.True(t, mr.Exists(Key(EntityUnits, 1, "")))
}

func TestEntityCache_CorruptValue(t *testing.T) {
	mr, c := setupTestCache(t)
	require.NoError(t, mr.Set(Key(EntityLeases, 1, ""), "{not json"))

	var out []cachedTenant
	ok, err := c.Load(context.Background(), EntityLeases, 1, "", &out)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNopCache(t *testing.T) {
	var c Cache = NopCache{}
	ctx := context.Background()
	require.NoError(t, c.Save(ctx, EntityTenants, 1, "", 1))
	var out int
	ok, err := c.Load(ctx, EntityTenants, 1, "", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx, EntityTenants))
}
