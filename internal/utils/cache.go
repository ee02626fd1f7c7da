package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"
)

// Cache keys shared by the services
const (
	CacheKeyMenu             = "menu:available"
	CacheKeyDeliverySettings = "settings:delivery"
	CacheTTL                 = 60 * time.Second
)

// Cache is a JSON cache on top of Redis. A Cache with a nil client always
// misses and ignores writes, so callers never need to check for Redis.
type Cache struct {
	rdb *redis.Client
}

// NewCache wraps a Redis client; rdb may be nil
func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Set sets a value in Redis with a specified TTL
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// Delete deletes keys from Redis
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err() // Delete keys from Redis
}

// Invalidate deletes keys and logs instead of failing; a stale entry expires with its TTL
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		logrus.WithFields(logrus.Fields{"keys": keys, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}
