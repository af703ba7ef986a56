package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisBackend(t *testing.T) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisBackend(client, "wb:"), mr
}

func TestRedisBackend_MissingKey(t *testing.T) {
	b, _ := newRedisBackend(t)

	v, ok, err := b.Get(context.Background(), KeyRooms)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestRedisBackend_SetUsesPrefix(t *testing.T) {
	ctx := context.Background()
	b, mr := newRedisBackend(t)

	require.NoError(t, b.Set(ctx, KeyRooms, `[{"id":"r1"}]`))

	raw, err := mr.Get("wb:" + KeyRooms)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"r1"}]`, raw)

	v, ok, err := b.Get(ctx, KeyRooms)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, raw, v)
}

func TestRedisBackend_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	b, _ := newRedisBackend(t)
	s := New(b, nil)

	in := []item{{ID: "g1", Name: "Ada"}}
	require.NoError(t, Save(ctx, s, KeyGuests, in))
	assert.Equal(t, in, Load[item](ctx, s, KeyGuests))

	require.NoError(t, s.Clear(ctx, KeyGuests))
	assert.Empty(t, Load[item](ctx, s, KeyGuests))
}

func TestRedisBackend_PingFailsWhenDown(t *testing.T) {
	b, mr := newRedisBackend(t)
	require.NoError(t, b.Ping(context.Background()))

	mr.Close()

	assert.Error(t, b.Ping(context.Background()))
}
