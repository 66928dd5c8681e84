// Package cache provides Redis-backed read-side caches.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
)

// StatsCache stores computed ticket statistics keyed by their filter
// predicate, with a short TTL. Statistics are eventually consistent with the
// ticket store; a cache failure degrades to direct recomputation.
type StatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, prefix string, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Key derives a stable cache key from the filter predicate so that the list
// view and the statistics panel sharing a filter also share a cache slot.
// The month component keeps month-scoped category counts from leaking across
// month boundaries.
func (c *StatsCache) Key(filter maintenance.TicketFilter, month time.Time) string {
	raw, _ := json.Marshal(struct {
		Filter maintenance.TicketFilter
		Month  string
	}{filter, month.Format("200601")})

	sum := sha256.Sum256(raw)
	return c.prefix + hex.EncodeToString(sum[:16])
}

// Get loads cached statistics into dest. The second return value reports a
// cache hit.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read stats cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached stats: %w", err)
	}
	return true, nil
}

// Set stores statistics under key for the configured TTL.
func (c *StatsCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}
	return nil
}
