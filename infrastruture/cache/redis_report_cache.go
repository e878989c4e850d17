package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/redis/go-redis/v9"
)

const reportKeyFormat = "cleaner:report:%d"

// RedisReportCache stores execution reports as JSON documents with a TTL.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache creates a report cache. A non-positive ttlSeconds keeps entries forever.
func NewRedisReportCache(client *redis.Client, ttlSeconds int) *RedisReportCache {
	return &RedisReportCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the cached report, or (nil, nil) on a miss.
func (c *RedisReportCache) Get(ctx context.Context, id int) (*domain.Report, error) {
	raw, err := c.client.Get(ctx, reportKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decoding cached report %d: %w", id, err)
	}
	return &report, nil
}

// Set stores the report under its id.
func (c *RedisReportCache) Set(ctx context.Context, report *domain.Report) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, reportKey(report.ID), raw, ttl).Err()
}

func reportKey(id int) string {
	return fmt.Sprintf(reportKeyFormat, id)
}
