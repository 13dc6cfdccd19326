package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"derlgTravel/business/recommendation"
	"derlgTravel/domain"

	"github.com/redis/go-redis/v9"
)

const (
	matrixKey        = "engine:matrix"
	similarKeyPrefix = "engine:similar:"
	defaultEngineTTL = time.Hour
)

// EngineCache is a redis-backed SnapshotCache so multiple instances share
// one interaction matrix snapshot. Entries expire on TTL instead of living
// for the process lifetime.
type EngineCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ recommendation.SnapshotCache = (*EngineCache)(nil)

func NewEngineCache(client *redis.Client, ttl time.Duration) *EngineCache {
	if ttl <= 0 {
		ttl = defaultEngineTTL
	}
	return &EngineCache{client: client, ttl: ttl}
}

func (c *EngineCache) GetMatrix(ctx context.Context) (domain.InteractionMatrix, bool, error) {
	val, err := c.client.Get(ctx, matrixKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get matrix from Redis: %w", err)
	}

	var matrix domain.InteractionMatrix
	if err := json.Unmarshal([]byte(val), &matrix); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal matrix: %w", err)
	}

	return matrix, true, nil
}

func (c *EngineCache) SetMatrix(ctx context.Context, matrix domain.InteractionMatrix) error {
	raw, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("failed to marshal matrix: %w", err)
	}

	if err := c.client.Set(ctx, matrixKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store matrix in Redis: %w", err)
	}

	return nil
}

func (c *EngineCache) GetSimilar(ctx context.Context, userID string, k int) ([]recommendation.SimilarityEntry, bool, error) {
	key := fmt.Sprintf("%s%s:%d", similarKeyPrefix, userID, k)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get similar users from Redis: %w", err)
	}

	var entries []recommendation.SimilarityEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal similarity entries: %w", err)
	}

	return entries, true, nil
}

func (c *EngineCache) SetSimilar(ctx context.Context, userID string, k int, entries []recommendation.SimilarityEntry) error {
	key := fmt.Sprintf("%s%s:%d", similarKeyPrefix, userID, k)

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal similarity entries: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store similarity entries in Redis: %w", err)
	}

	return nil
}

func (c *EngineCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, similarKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if err := c.client.Del(ctx, matrixKey).Err(); err != nil {
		return fmt.Errorf("failed to delete matrix key: %w", err)
	}

	return nil
}
