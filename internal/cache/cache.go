// Package cache is a two-tier cache: go-cache in memory (L1) and redis (L2).
// L2 is optional; a nil redis client leaves the cache process-local.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	l1  *gocache.Cache
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func New(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{
		l1:  gocache.New(ttl, 2*ttl),
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

// Key builds a deterministic key from parts.
func Key(prefix string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("cg:%s:%x", prefix, sum[:12])
}

// Get tries L1, then L2. An L2 hit refills L1.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := c.l1.Get(key); ok {
		return v.([]byte), true
	}
	if c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("cache: L2 get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	c.l1.SetDefault(key, data)
	return data, true
}

func (c *Cache) Set(ctx context.Context, key string, data []byte) {
	c.l1.SetDefault(key, data)
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Debug("cache: L2 set failed", zap.String("key", key), zap.Error(err))
	}
}

func GetJSON[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var out T
	data, ok := c.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

func SetJSON[T any](ctx context.Context, c *Cache, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.Set(ctx, key, data)
}
