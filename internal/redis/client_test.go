package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClientTalksToServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "battlemap:a", "{}", 0).Err())
	assert.Equal(t, "{}", mustGet(t, mr, "battlemap:a"))

	_, err = client.Get(ctx, "battlemap:missing").Result()
	assert.ErrorIs(t, err, redis.Nil)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}

func TestNewClientFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClientFromURL("redis://" + mr.Addr())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()
	assert.NoError(t, client.Ping(context.Background()).Err())

	_, err = redis.NewClientFromURL("::not a url")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
