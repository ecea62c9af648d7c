package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightapi/infras/otel/mocks"
	"flightapi/shared/cache"
)

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestGet_StringHit(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "flight:token", "abc123", 60))

	var got string
	err := redisCache.Get(ctx, "flight:token", &got)

	assert.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestGet_StructRoundTrip(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	type cached struct {
		FlightNumber string `json:"flight_number"`
	}

	require.NoError(t, redisCache.Save(ctx, "flight:get:1", cached{FlightNumber: "JL62"}, 60))

	var got cached
	err := redisCache.Get(ctx, "flight:get:1", &got)

	assert.NoError(t, err)
	assert.Equal(t, "JL62", got.FlightNumber)
}

func TestGet_MissWrapsNil(t *testing.T) {
	redisCache, _ := newTestCache(t)

	var got string
	err := redisCache.Get(context.Background(), "flight:get:404", &got)

	assert.ErrorIs(t, err, cache.Nil)
}

func TestClear_MatchesGlob(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "flight:gets", "[]", 60))
	require.NoError(t, redisCache.Save(ctx, "flight:get:1", "{}", 60))
	require.NoError(t, redisCache.Save(ctx, "limiter:10.0.0.1", "1", 60))

	require.NoError(t, redisCache.Clear(ctx, "flight*"))

	assert.False(t, server.Exists("flight:gets"))
	assert.False(t, server.Exists("flight:get:1"))
	assert.True(t, server.Exists("limiter:10.0.0.1"))
}
