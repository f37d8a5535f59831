package domain

import (
	"context"
	"time"
)

// QueryCache stores serialized query results with a logical expiry.
// Get returns ErrCacheMiss when the key is absent; stale reports a logically expired entry.
type QueryCache interface {
	Get(ctx context.Context, key string) (data []byte, stale bool, err error)
	Set(ctx context.Context, key string, data []byte, staleAfter time.Duration) error
	// Invalidate drops every key starting with prefix
	Invalidate(ctx context.Context, prefix string) error
}
