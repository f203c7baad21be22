package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storehub/internal/api/dto"

	"github.com/redis/go-redis/v9"
)

// ProductCache keeps paginated product listings in Redis so the storefront's
// hottest read skips Postgres. Writes to the catalog invalidate the whole
// keyspace; listings are small enough that precision is not worth the
// bookkeeping.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(redisURL, password string, ttl time.Duration) (*ProductCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		// Plain host:port also accepted
		opts = &redis.Options{Addr: redisURL}
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ProductCache{client: rdb, ttl: ttl}, nil
}

func listKey(page, pageSize int) string {
	return fmt.Sprintf("products:list:page:%d:size:%d", page, pageSize)
}

// GetList returns a cached page, or nil on miss. Cache errors degrade to a
// miss; the caller falls through to the database.
func (c *ProductCache) GetList(ctx context.Context, page, pageSize int) *dto.PaginatedProductResponse {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, listKey(page, pageSize)).Result()
	if err != nil {
		return nil
	}
	var resp dto.PaginatedProductResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil
	}
	return &resp
}

func (c *ProductCache) SetList(ctx context.Context, page, pageSize int, resp *dto.PaginatedProductResponse) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	c.client.Set(ctx, listKey(page, pageSize), raw, c.ttl)
}

// Invalidate drops every cached listing page after a catalog write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, "products:list:*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

func (c *ProductCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
