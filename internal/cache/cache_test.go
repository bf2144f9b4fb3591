package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsStable(t *testing.T) {
	type req struct {
		EV      string
		Horizon int
	}
	k1, err := Key("sim", req{"Essential", 10})
	require.NoError(t, err)
	k2, err := Key("sim", req{"Essential", 10})
	require.NoError(t, err)
	k3, err := Key("sim", req{"Essential", 11})
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "sim:")
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute, 0)
	defer c.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(2 * time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)

	c.sweep()
	assert.Equal(t, 0, c.Len())
}

func TestNilMemoryIsNoop(t *testing.T) {
	var c *Memory
	assert.NoError(t, c.Set(context.Background(), "k", []byte("v")))
	_, ok, err := c.Get(context.Background(), "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRoundTripAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c := NewRedis(mr.Addr(), time.Minute)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "sim:abc", []byte(`{"net":1}`)))
	got, ok, err := c.Get(ctx, "sim:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"net":1}`, string(got))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "sim:abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSurfacesConnectionErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedis(mr.Addr(), time.Minute)
	defer c.Close()
	mr.Close()

	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
}
