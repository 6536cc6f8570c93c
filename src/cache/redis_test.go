package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedis(Config{Backend: "redis", Addr: mr.Addr(), TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return mr, c
}

func TestNewSelectsRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := New(Config{Backend: "redis", Addr: mr.Addr()})
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.(*Redis)
	assert.True(t, ok, "expected redis backend")
}

func TestNewRedisRefusesDeadServer(t *testing.T) {
	_, err := NewRedis(Config{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestRedis(t)

	require.NoError(t, c.Set(ctx, GamesKey("2026-01-15"), []byte(`[]`), 0))

	got, err := c.Get(ctx, GamesKey("2026-01-15"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Keys land under the dashboard prefix on the shared instance.
	assert.True(t, mr.Exists("courtside:games:2026-01-15"))

	_, err = c.Get(ctx, GamesKey("2026-01-16"))
	assert.Error(t, err)

	require.NoError(t, c.Delete(ctx, GamesKey("2026-01-15")))
	assert.False(t, mr.Exists("courtside:games:2026-01-15"))
}

func TestRedisTTL(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestRedis(t)

	require.NoError(t, c.Set(ctx, OddsKey("2026-01-15"), []byte(`{}`), 30*time.Second))
	mr.FastForward(time.Minute)

	_, err := c.Get(ctx, OddsKey("2026-01-15"))
	assert.Error(t, err, "key should expire after fast-forward")
}

func TestRedisClearPattern(t *testing.T) {
	ctx := context.Background()
	_, c := newTestRedis(t)

	require.NoError(t, c.Set(ctx, GamesKey("2026-01-15"), []byte("x"), 0))
	require.NoError(t, c.Set(ctx, OddsKey("2026-01-15"), []byte("x"), 0))
	require.NoError(t, c.Set(ctx, StandingsKey(), []byte("x"), 0))

	require.NoError(t, c.Clear(ctx, DayPattern("2026-01-15")))

	ok, err := c.Exists(ctx, GamesKey("2026-01-15"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Exists(ctx, StandingsKey())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisStats(t *testing.T) {
	ctx := context.Background()
	_, c := newTestRedis(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "absent")

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Keys)
	assert.True(t, stats.Connected)
	assert.Equal(t, "redis", stats.Backend)
}

func TestRedisPingAfterServerStop(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestRedis(t)

	require.NoError(t, c.Ping(ctx))
	mr.Close()
	assert.Error(t, c.Ping(ctx))
}
