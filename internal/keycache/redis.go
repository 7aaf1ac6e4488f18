package keycache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on Redis so that multiple host processes
// share the latest authority-issued signing key instead of each
// escalating on its own. The key is stored as JSON under "<prefix>signingkey"
// with TTL = remaining key lifetime.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed signing-key cache. Prefix may be empty.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "sessiongate:"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key() string {
	return c.prefix + "signingkey"
}

func (c *RedisCache) Current(ctx context.Context) (KeyInfo, bool) {
	b, err := c.client.Get(ctx, c.key()).Bytes()
	if err != nil {
		// redis.Nil and transport errors both read as "no usable key";
		// the caller escalates and repopulates.
		return KeyInfo{}, false
	}
	var info KeyInfo
	if err := json.Unmarshal(b, &info); err != nil {
		return KeyInfo{}, false
	}
	// If expired from the perspective of the stored value, treat as missing
	if !info.Valid(time.Now()) {
		_ = c.client.Del(ctx, c.key()).Err()
		return KeyInfo{}, false
	}
	return info, true
}

func (c *RedisCache) Update(ctx context.Context, info KeyInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	ttl := time.Until(time.UnixMilli(info.ExpiresAt))
	if ttl <= 0 {
		// ensure a minimal TTL so Redis won't keep expired keys
		ttl = time.Second
	}
	return c.client.Set(ctx, c.key(), b, ttl).Err()
}
