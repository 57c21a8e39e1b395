// Package redis wraps a Redis client and applies the toolkit's retry
// strategies to its basic operations.
package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/go-again/again/retry"
)

// NoMatches is returned when Redis did not find any matching key.
const NoMatches = redis.Nil

// Client wraps the Redis client.
type Client struct {
	*redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	return &Client{
		redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get retrieves a value by key from Redis.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

// Set stores a value by key in Redis.
func (c *Client) Set(ctx context.Context, key string, value interface{}) error {
	return c.Client.Set(ctx, key, value, 0).Err()
}

// SetWithExpiration stores a value by key with the given expiration time.
func (c *Client) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.Client.Set(ctx, key, value, expiration).Err()
}

// Del removes a key from Redis.
func (c *Client) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// GetWithRetry retrieves a value by key, re-issuing the command per the
// given strategy. A missing key counts as a failure and is retried.
func (c *Client) GetWithRetry(ctx context.Context, strat retry.Strategy, key string) (string, error) {
	return retry.DoValue(func() (string, error) {
		return c.Get(ctx, key)
	}, strat)
}

// SetWithRetry stores a value by key, re-issuing the command per the given
// strategy.
func (c *Client) SetWithRetry(ctx context.Context, strat retry.Strategy, key string, value interface{}) error {
	return retry.DoContext(ctx, strat, func() error {
		return c.Set(ctx, key, value)
	})
}

// DelWithRetry removes a key, re-issuing the command per the given strategy.
func (c *Client) DelWithRetry(ctx context.Context, strat retry.Strategy, key string) error {
	return retry.DoContext(ctx, strat, func() error {
		return c.Del(ctx, key)
	})
}
