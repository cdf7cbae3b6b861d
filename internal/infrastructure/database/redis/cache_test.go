package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T, opts ...CacheOption) (Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := NewClientFromRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), nil)
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, nil, opts...), mr
}

func TestCache_SetGet(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", payload{Name: "a", Count: 2}, time.Minute))

	var got payload
	require.NoError(t, cache.Get(ctx, "k1", &got))
	assert.Equal(t, payload{Name: "a", Count: 2}, got)
}

func TestCache_GetMiss(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)

	var got payload
	err := cache.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_KeysArePrefixed(t *testing.T) {
	t.Parallel()

	cache, mr := newTestCache(t, WithPrefix("news:"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", payload{Name: "a"}, time.Minute))
	assert.True(t, mr.Exists("news:k1"))
}

func TestCache_Delete(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", payload{Name: "a"}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "k1"))

	var got payload
	assert.ErrorIs(t, cache.Get(ctx, "k1", &got), ErrCacheMiss)

	assert.NoError(t, cache.Delete(ctx), "deleting nothing is a no-op")
}

func TestCache_GetOrSet(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (interface{}, error) {
		loads++
		return payload{Name: "loaded", Count: loads}, nil
	}

	var first payload
	require.NoError(t, cache.GetOrSet(ctx, "k1", &first, time.Minute, loader))
	assert.Equal(t, payload{Name: "loaded", Count: 1}, first)

	var second payload
	require.NoError(t, cache.GetOrSet(ctx, "k1", &second, time.Minute, loader))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads, "second call served from cache")
}

func TestCache_GetOrSetLoaderError(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)

	var got payload
	err := cache.GetOrSet(context.Background(), "k1", &got, time.Minute, func(context.Context) (interface{}, error) {
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestCache_SetExpires(t *testing.T) {
	t.Parallel()

	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", payload{Name: "a"}, time.Minute))

	// TTL jitter stays within ±10%.
	ttl := mr.TTL("geosignal:k1")
	assert.Greater(t, ttl, 54*time.Second)
	assert.Less(t, ttl, 66*time.Second)

	mr.FastForward(2 * time.Minute)
	var got payload
	assert.ErrorIs(t, cache.Get(ctx, "k1", &got), ErrCacheMiss)
}

//Personal.AI order the ending
