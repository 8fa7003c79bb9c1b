package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache is a best-effort read-through cache over redis. It is never
// correctness-bearing: a nil *Cache disables caching entirely and any redis
// failure falls through to the loader (fail open).
type Cache struct {
	RDB *redis.Client
	TTL time.Duration
	sf  singleflight.Group
}

func New(addr, pass string, db int, ttl time.Duration) *Cache {
	return &Cache{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		TTL: ttl,
	}
}

func (c *Cache) Enabled() bool { return c != nil && c.RDB != nil }

// Key builds "prefix:op:md5(json(args))". Volatile collaborators (contexts,
// sessions, db handles) must not be part of args.
func Key(prefix, op string, args ...any) string {
	b, _ := json.Marshal(args)
	sum := md5.Sum(b)
	return prefix + ":" + op + ":" + hex.EncodeToString(sum[:])
}

// GetOrLoad returns the cached bytes on a hit. On a miss concurrent loads for
// the same key are collapsed via singleflight; the result is stored with ttl
// best-effort.
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if !c.Enabled() {
		return load(ctx)
	}
	// Any Get error (miss or unreachable backend) falls through to the loader.
	if b, err := c.RDB.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		// "null" (a nil slice or pointer marshals to it) is returned but not
		// stored, so the next read goes back to the source.
		if len(b) != 0 && string(b) != "null" {
			_ = c.RDB.Set(ctx, key, b, ttl).Err()
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// InvalidateByPrefix evicts every key under prefix. Eviction is best-effort;
// a failed SCAN only means stale entries live until their TTL.
func (c *Cache) InvalidateByPrefix(ctx context.Context, prefix string) {
	if !c.Enabled() {
		return
	}
	iter := c.RDB.Scan(ctx, 0, prefix+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if iter.Err() != nil || len(keys) == 0 {
		return
	}
	_ = c.RDB.Del(ctx, keys...).Err()
}
