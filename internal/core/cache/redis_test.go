package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0, 5*time.Minute), mr
}

func TestKey_StableAndArgSensitive(t *testing.T) {
	t.Parallel()
	k1 := Key("notes:1", "get", uint(7))
	k2 := Key("notes:1", "get", uint(7))
	k3 := Key("notes:1", "get", uint(8))

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "notes:1:get:")
}

func TestGetOrLoad_MissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte(`"payload"`), nil
	}

	b, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `"payload"`, string(b))
	assert.Equal(t, 1, calls)

	// second read served from redis, loader not invoked again
	b, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `"payload"`, string(b))
	assert.Equal(t, 1, calls)
}

func TestGetOrLoad_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte("v"), nil
	}

	_, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entry must hit the loader again")
}

func TestGetOrLoad_NullResultNotStored(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte("null"), nil
	}

	b, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
	assert.False(t, mr.Exists("k"), "a null payload must not be cached")

	// the next read goes back to the loader instead of a cached null
	_, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_LoaderError(t *testing.T) {
	c, _ := newTestCache(t)
	boom := errors.New("boom")

	_, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	// errors are not cached
	b, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}

func TestGetOrLoad_FailOpenWhenBackendDown(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0, time.Minute)
	mr.Close()

	b, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("direct"), nil
	})
	require.NoError(t, err, "unreachable cache must bypass, not fail the request")
	assert.Equal(t, "direct", string(b))
}

func TestGetOrLoad_NilCacheDisabled(t *testing.T) {
	t.Parallel()
	var c *Cache

	b, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("direct"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", string(b))

	// invalidation on a nil cache is a no-op, not a panic
	c.InvalidateByPrefix(context.Background(), "notes:1")
}

func TestInvalidateByPrefix(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.RDB.Set(ctx, "notes:1:list:aa", "x", 0).Err())
	require.NoError(t, c.RDB.Set(ctx, "notes:1:get:bb", "y", 0).Err())
	require.NoError(t, c.RDB.Set(ctx, "notes:2:list:cc", "z", 0).Err())

	c.InvalidateByPrefix(ctx, "notes:1")

	_, err := c.RDB.Get(ctx, "notes:1:list:aa").Result()
	assert.ErrorIs(t, err, redis.Nil)
	_, err = c.RDB.Get(ctx, "notes:1:get:bb").Result()
	assert.ErrorIs(t, err, redis.Nil)

	v, err := c.RDB.Get(ctx, "notes:2:list:cc").Result()
	require.NoError(t, err, "other owners' entries must survive")
	assert.Equal(t, "z", v)
}

func TestGetOrLoadJSON_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	calls := 0
	got, err := GetOrLoadJSON(c, ctx, "k", time.Minute, func(context.Context) ([]row, error) {
		calls++
		return []row{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = GetOrLoadJSON(c, ctx, "k", time.Minute, func(context.Context) ([]row, error) {
		calls++
		return nil, errors.New("should not be called")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint(2), got[1].ID)
}
