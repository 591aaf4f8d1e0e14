package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// searchKey builds the cache key for one find-combinations query. The
// snapshot version is part of the key, so reloading the catalog makes
// every previously cached entry unreachable; stale keys simply age out
// via TTL.
func searchKey(version int64, effectType string, strength, maxUnits int) string {
	return fmt.Sprintf("combo:v%d:search:%s:%d:%d", version, effectType, strength, maxUnits)
}

// GetResults fetches a cached result list. The second return reports a
// cache hit; a miss is not an error.
func (c *Client) GetResults(ctx context.Context, version int64, effectType string, strength, maxUnits int) ([]combo.Candidate, bool, error) {
	data, err := c.rdb.Get(ctx, searchKey(version, effectType, strength, maxUnits)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached results: %w", err)
	}
	var results []combo.Candidate
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false, fmt.Errorf("decode cached results: %w", err)
	}
	return results, true, nil
}

// SetResults stores a result list with the given TTL.
func (c *Client) SetResults(ctx context.Context, version int64, effectType string, strength, maxUnits int, results []combo.Candidate, ttl time.Duration) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := c.rdb.Set(ctx, searchKey(version, effectType, strength, maxUnits), data, ttl).Err(); err != nil {
		return fmt.Errorf("set cached results: %w", err)
	}
	return nil
}
