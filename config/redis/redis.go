package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache is a JSON cache-aside helper. A nil *Cache, or one without a client,
// behaves as an always-empty cache so callers never branch on CACHE_ENABLED.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewCache(client *goredis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

/*
* Create the client and ping it with a short timeout
* Return error so the caller can decide to run without cache
 */
func Connect(ctx context.Context, addr string, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	log.Info().Str("addr", addr).Msg("Redis connected")
	return client, nil
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) SetCache(ctx context.Context, key string, value interface{}) error {
	if !c.enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// GetCache reports whether key was present and decoded into dest.
func (c *Cache) GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.enabled() {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) DeleteCache(ctx context.Context, keys ...string) error {
	if !c.enabled() || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if !c.enabled() {
		return nil
	}
	return c.client.Close()
}
