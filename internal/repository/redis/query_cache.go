package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/repository/cache"
)

const (
	KeyPrefix = "feed:query:"
	scanCount = 100
)

type queryCache struct {
	client *redis.Client
	gcTime time.Duration
}

var _ domain.QueryCache = (*queryCache)(nil)

// NewQueryCache keeps every entry for gcTime, well past its logical expiry
func NewQueryCache(client *redis.Client, gcTime time.Duration) *queryCache {
	return &queryCache{
		client: client,
		gcTime: gcTime,
	}
}

func (c *queryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var entry cache.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, err
	}
	return entry.Data, entry.IsStale(), nil
}

func (c *queryCache) Set(ctx context.Context, key string, data []byte, staleAfter time.Duration) error {
	raw, err := json.Marshal(cache.NewEntry(data, staleAfter))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyPrefix+key, raw, c.gcTime).Err()
}

func (c *queryCache) Invalidate(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyPrefix+prefix+"*", scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
