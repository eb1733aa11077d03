package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskflow/task-management-api/internal/api/metrics"
	"github.com/taskflow/task-management-api/internal/core/ports"
)

const defaultListTTL = 30 * time.Second

// ListCache caches task-list pages per user. Each user has a version counter;
// the version is part of every page key, so a single INCR on mutation orphans
// all of that user's cached pages at once (they expire by TTL).
//
// Key format: tasks:<user_id>:v<version>:<page>:<limit>
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get returns the cached page for (userID, page, limit), if present. Cache
// failures are treated as misses; the list query is the fallback.
func (c *ListCache) Get(ctx context.Context, userID string, page, limit int) (*ports.ListTasksResult, bool) {
	key, err := c.pageKey(ctx, userID, page, limit)
	if err != nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		metrics.ListCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var result ports.ListTasksResult
	if err := json.Unmarshal(raw, &result); err != nil {
		metrics.ListCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ListCacheTotal.WithLabelValues("hit").Inc()
	return &result, true
}

// Set stores a page under the user's current version. Best-effort: errors are
// dropped, the next request simply recomputes.
func (c *ListCache) Set(ctx context.Context, userID string, page, limit int, result *ports.ListTasksResult) {
	key, err := c.pageKey(ctx, userID, page, limit)
	if err != nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate bumps the user's version counter, orphaning every cached page
// for that user in one write.
func (c *ListCache) Invalidate(ctx context.Context, userID string) {
	_ = c.client.Incr(ctx, c.versionKey(userID)).Err()
}

func (c *ListCache) pageKey(ctx context.Context, userID string, page, limit int) (string, error) {
	version, err := c.client.Get(ctx, c.versionKey(userID)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("tasks:%s:v%d:%d:%d", userID, version, page, limit), nil
}

func (c *ListCache) versionKey(userID string) string {
	return fmt.Sprintf("tasks:%s:version", userID)
}
