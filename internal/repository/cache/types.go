package cache

import (
	"encoding/json"
	"time"
)

// Entry 支持逻辑过期的查询结果. The key itself lives longer (GC TTL) so a
// stale entry can still be served while it is being refreshed.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	StaleAt   time.Time       `json:"stale_at"`   // 逻辑过期时间
	CreatedAt time.Time       `json:"created_at"` // 创建时间，用于调试
}

// IsStale 检查是否逻辑过期
func (e *Entry) IsStale() bool {
	return time.Now().After(e.StaleAt)
}

func NewEntry(data []byte, staleAfter time.Duration) *Entry {
	now := time.Now()
	return &Entry{
		Data:      data,
		StaleAt:   now.Add(staleAfter),
		CreatedAt: now,
	}
}
