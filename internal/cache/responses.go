// Package cache provides the Redis-backed raw response cache consulted by
// the fetch hot path.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/XavierBriggs/Argus/pkg/contracts"
	"github.com/redis/go-redis/v9"
)

// ResponseCache stores raw CSV bodies keyed by a hash of the request URL.
// Best-effort by contract: every Redis failure degrades to a miss so a cache
// outage can never fail a session.
type ResponseCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// Ensure ResponseCache implements the contract
var _ contracts.ResponseCache = (*ResponseCache)(nil)

// New creates a response cache with the given TTL
func New(redisClient *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Get returns the cached body for url, ok false on miss or Redis error
func (c *ResponseCache) Get(ctx context.Context, url string) (string, bool) {
	body, err := c.redis.Get(ctx, buildKey(url)).Result()
	if err != nil {
		if err != redis.Nil {
			fmt.Printf("[cache] get error: %v\n", err)
		}
		return "", false
	}
	return body, true
}

// Put stores the body for url with the configured TTL
func (c *ResponseCache) Put(ctx context.Context, url, body string) {
	if err := c.redis.Set(ctx, buildKey(url), body, c.ttl).Err(); err != nil {
		fmt.Printf("[cache] set error: %v\n", err)
	}
}

// buildKey creates the Redis key for a request URL
// Format: statcast:csv:{sha256 of url}
func buildKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "statcast:csv:" + hex.EncodeToString(sum[:])
}
