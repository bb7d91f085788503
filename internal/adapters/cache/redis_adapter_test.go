package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/redis"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisAdapter(redisclient.NewClientFromRedis(client)).(*RedisAdapter), mr
}

func TestRedisAdapter_RoundTrip(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "intent:hello", []byte(`{"intent":"greeting"}`), 60))

	value, err := adapter.Get(ctx, "intent:hello")
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"greeting"}`, string(value))

	exists, err := adapter.Exists(ctx, "intent:hello")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, adapter.Delete(ctx, "intent:hello"))
	exists, err = adapter.Exists(ctx, "intent:hello")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisAdapter_GetMiss(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_Expiration(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ephemeral", []byte("x"), 30))
	mr.FastForward(31 * time.Second)

	_, err := adapter.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, ErrMiss)
}
