package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomsonrent/rental-service/internal/domain"
)

// ErrCacheMiss is returned when the listing is not in the cache
var ErrCacheMiss = errors.New("listing.cache: miss")

// Cache is a read-through redis cache for listing records. Availability
// checks and booking creation hit the same few listings repeatedly, so
// single-listing reads are worth keeping warm. Writers must invalidate.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a listing cache
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(id int64) string {
	return fmt.Sprintf("listing:%d", id)
}

// Get returns a cached listing or ErrCacheMiss
func (c *Cache) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	data, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("listing.cache: get: %w", err)
	}

	var listing domain.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, ErrCacheMiss
	}

	return &listing, nil
}

// Set stores a listing with the configured TTL
func (c *Cache) Set(ctx context.Context, listing *domain.Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("listing.cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, key(listing.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("listing.cache: set: %w", err)
	}

	return nil
}

// Invalidate drops a listing from the cache
func (c *Cache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("listing.cache: invalidate: %w", err)
	}
	return nil
}
