package cache

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe: when Redis is missing or
// unreachable every read behaves like a miss and every write is a no-op.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// NewFromEnv builds a client from REDIS_* environment variables. Returns
// nil when no address is configured; a nil *Client is safe to use.
func NewFromEnv() *Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	db := 0
	if v, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		db = v
	}
	return New(addr, os.Getenv("REDIS_PASSWORD"), db)
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Set(ctx, key, value, ttl)
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Del(ctx, key)
	return nil
}
