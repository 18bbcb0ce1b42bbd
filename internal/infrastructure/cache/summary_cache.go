package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/application/accounts"
)

const summaryKey = "backoffice:summary:v1"

// RedisSummaryCache caches the account summary in Redis. Cache failures are
// logged and treated as misses so a Redis outage never breaks the endpoint.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSummaryCache creates a summary cache backed by the given client
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSummaryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisSummaryCache{client: client, ttl: ttl, logger: logger}
}

// GetSummary returns the cached summary if one exists
func (c *RedisSummaryCache) GetSummary(ctx context.Context) (*accounts.AccountSummary, bool) {
	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("summary cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var summary accounts.AccountSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		c.logger.Warn("summary cache entry corrupt, dropping it", zap.Error(err))
		c.client.Del(ctx, summaryKey)
		return nil, false
	}
	return &summary, true
}

// SetSummary stores the summary with the configured TTL
func (c *RedisSummaryCache) SetSummary(ctx context.Context, summary *accounts.AccountSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		c.logger.Warn("summary cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, summaryKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summary after a ledger mutation
func (c *RedisSummaryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		c.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}
