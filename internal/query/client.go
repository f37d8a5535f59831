// Package query serves read models through a shared cache: fresh hits are
// returned as is, stale hits are returned and refreshed in the background,
// misses are fetched once no matter how many callers ask concurrently.
package query

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/metrics"
)

// DefaultFetchTimeout bounds a shared fetch, which no single caller's context may cancel
const DefaultFetchTimeout = 30 * time.Second

type Client struct {
	cache        domain.QueryCache
	staleTime    time.Duration
	fetchTimeout time.Duration
	group        singleflight.Group
}

func NewClient(cache domain.QueryCache, staleTime time.Duration) *Client {
	return &Client{
		cache:        cache,
		staleTime:    staleTime,
		fetchTimeout: DefaultFetchTimeout,
	}
}

// WithFetchTimeout sets how long a shared fetch may run
func (c *Client) WithFetchTimeout(d time.Duration) *Client {
	if d > 0 {
		c.fetchTimeout = d
	}
	return c
}

// detach keeps the caller's values but not its cancellation
func (c *Client) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
}

// Fetch reads key through the cache, calling fn on a miss. Cache failures never fail a read.
func Fetch[T any](ctx context.Context, c *Client, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	data, stale, err := c.cache.Get(ctx, key)
	if err == nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			if stale {
				metrics.QueryCacheResults.WithLabelValues("stale").Inc()
				go refresh(ctx, c, key, fn)
			} else {
				metrics.QueryCacheResults.WithLabelValues("hit").Inc()
			}
			return cached, nil
		}
		metrics.QueryCacheResults.WithLabelValues("error").Inc()
		logrus.Warnf("query cache entry %s is corrupt, refetching", key)
	} else if errors.Is(err, domain.ErrCacheMiss) {
		metrics.QueryCacheResults.WithLabelValues("miss").Inc()
	} else {
		metrics.QueryCacheResults.WithLabelValues("error").Inc()
		logrus.Warnf("query cache get %s: %v", key, err)
	}

	// 缓存未命中，使用singleflight避免重复请求
	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := c.detach(ctx)
		defer cancel()
		v, err := fn(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.store(fetchCtx, key, v)
		return v, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// refresh 异步重建缓存
func refresh[T any](ctx context.Context, c *Client, key string, fn func(ctx context.Context) (T, error)) {
	ctx, cancel := c.detach(ctx)
	defer cancel()
	_, err, _ := c.group.Do("refresh:"+key, func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, v)
		return nil, nil
	})
	if err != nil {
		logrus.Errorf("refresh query %s failed: %v", key, err)
	}
}

func (c *Client) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.Warnf("failed to marshal query %s for cache: %v", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, data, c.staleTime); err != nil {
		logrus.Warnf("query cache set %s: %v", key, err)
	}
}

// Invalidate drops every cached query whose key starts with prefix
func (c *Client) Invalidate(ctx context.Context, prefix string) {
	if err := c.cache.Invalidate(ctx, prefix); err != nil {
		logrus.Errorf("invalidate queries %s: %v", prefix, err)
	}
}
