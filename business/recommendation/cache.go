package recommendation

import (
	"context"
	"fmt"
	"sync"

	"derlgTravel/domain"
)

// SimilarityEntry pairs a neighbor user with a similarity score in [0, 1].
type SimilarityEntry struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// SnapshotCache holds the interaction matrix snapshot and per-(user, K)
// neighbor lists. Implementations may evict on TTL; Clear drops everything.
// Concurrent population races are harmless because the inputs are
// deterministic, so a lost write only means redundant recomputation.
type SnapshotCache interface {
	GetMatrix(ctx context.Context) (domain.InteractionMatrix, bool, error)
	SetMatrix(ctx context.Context, matrix domain.InteractionMatrix) error
	GetSimilar(ctx context.Context, userID string, k int) ([]SimilarityEntry, bool, error)
	SetSimilar(ctx context.Context, userID string, k int, entries []SimilarityEntry) error
	Clear(ctx context.Context) error
}

func similarityKey(userID string, k int) string {
	return fmt.Sprintf("%s|k=%d", userID, k)
}

// MemoryCache is the default process-lifetime SnapshotCache.
type MemoryCache struct {
	mu      sync.RWMutex
	matrix  domain.InteractionMatrix
	similar map[string][]SimilarityEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		similar: make(map[string][]SimilarityEntry),
	}
}

func (c *MemoryCache) GetMatrix(ctx context.Context) (domain.InteractionMatrix, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.matrix == nil {
		return nil, false, nil
	}
	return c.matrix, true, nil
}

func (c *MemoryCache) SetMatrix(ctx context.Context, matrix domain.InteractionMatrix) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.matrix = matrix
	return nil
}

func (c *MemoryCache) GetSimilar(ctx context.Context, userID string, k int) ([]SimilarityEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, ok := c.similar[similarityKey(userID, k)]
	return entries, ok, nil
}

func (c *MemoryCache) SetSimilar(ctx context.Context, userID string, k int, entries []SimilarityEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.similar[similarityKey(userID, k)] = entries
	return nil
}

func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.matrix = nil
	c.similar = make(map[string][]SimilarityEntry)
	return nil
}
