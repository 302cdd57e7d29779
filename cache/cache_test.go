package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/cache"
	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maze builds a small frozen maze.
func maze(t *testing.T, seed int64) *floorplan.Floorplan {
	t.Helper()
	fp, err := floorplan.New(9, 7)
	require.NoError(t, err)
	require.NoError(t, builder.Generate(context.Background(), fp, builder.MethodKruskal, builder.WithSeed(seed)))
	return fp
}

func newRedis(t *testing.T, opts ...cache.RedisOption) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedis(client, opts...), srv
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)

	fp := maze(t, 3)
	require.NoError(t, c.Put(ctx, "k", fp))
	assert.Equal(t, 1, c.Len())

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, got.Equal(fp))
	assert.True(t, got.Frozen())
	assert.NotSame(t, fp, got)
}

func TestMemoryRejectsNil(t *testing.T) {
	assert.Error(t, cache.NewMemory().Put(context.Background(), "k", nil))
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, srv := newRedis(t, cache.WithPrefix("test:"), cache.WithTTL(time.Minute))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)

	fp := maze(t, 5)
	require.NoError(t, c.Put(ctx, "k", fp))
	assert.True(t, srv.Exists("test:k"))
	assert.Equal(t, time.Minute, srv.TTL("test:k"))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, got.Equal(fp))
	wantExit, _ := fp.Exit()
	gotExit, ok := got.Exit()
	assert.True(t, ok)
	assert.Equal(t, wantExit, gotExit)
}

func TestRedisExpiry(t *testing.T) {
	ctx := context.Background()
	c, srv := newRedis(t, cache.WithTTL(time.Minute))
	require.NoError(t, c.Put(ctx, "k", maze(t, 1)))

	srv.FastForward(2 * time.Minute)
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestRedisCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, srv := newRedis(t)

	require.NoError(t, srv.Set("lvmaze:maze:junk", "not json"))
	_, err := c.Get(ctx, "junk")
	assert.ErrorIs(t, err, cache.ErrCorrupt)

	// Well-formed JSON describing a sealed grid fails verification.
	require.NoError(t, srv.Set("lvmaze:maze:sealed",
		`{"width":2,"height":1,"walls":[15,15],"borders":[13,7],"rooms":[0,0],"exit":-1}`))
	_, err = c.Get(ctx, "sealed")
	assert.ErrorIs(t, err, cache.ErrCorrupt)
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()
	c, _ := newRedis(t, cache.WithLockTries(1), cache.WithLockExpiry(time.Minute))

	unlock, err := c.Lock(ctx, "k")
	require.NoError(t, err)

	// A second holder cannot take the lock while it is held.
	_, err = c.Lock(ctx, "k")
	assert.Error(t, err)

	require.NoError(t, unlock(ctx))

	unlock, err = c.Lock(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, unlock(ctx))
}

func TestRedisUnreachable(t *testing.T) {
	ctx := context.Background()
	c, srv := newRedis(t)
	srv.Close()

	_, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMiss)
}
