package recommendation

import (
	"context"
	"sync"
	"testing"

	"derlgTravel/domain"
)

func TestMemoryCache_MatrixRoundTrip(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok, err := cache.GetMatrix(ctx); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	matrix := domain.InteractionMatrix{"u1": {"h1": 5}}
	if err := cache.SetMatrix(ctx, matrix); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := cache.GetMatrix(ctx)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if got["u1"]["h1"] != 5 {
		t.Errorf("unexpected matrix: %v", got)
	}
}

func TestMemoryCache_SimilarKeyedByUserAndK(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	entries := []SimilarityEntry{{UserID: "u2", Similarity: 0.9}}
	if err := cache.SetSimilar(ctx, "u1", 10, entries); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, ok, _ := cache.GetSimilar(ctx, "u1", 5); ok {
		t.Error("different K must be a different cache entry")
	}
	if _, ok, _ := cache.GetSimilar(ctx, "u2", 10); ok {
		t.Error("different user must be a different cache entry")
	}

	got, ok, err := cache.GetSimilar(ctx, "u1", 10)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].UserID != "u2" {
		t.Errorf("unexpected entries: %v", got)
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.SetMatrix(ctx, domain.InteractionMatrix{"u1": {"h1": 5}})
	_ = cache.SetSimilar(ctx, "u1", 10, []SimilarityEntry{{UserID: "u2", Similarity: 0.9}})

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, ok, _ := cache.GetMatrix(ctx); ok {
		t.Error("matrix survived clear")
	}
	if _, ok, _ := cache.GetSimilar(ctx, "u1", 10); ok {
		t.Error("similar entries survived clear")
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = cache.SetMatrix(ctx, domain.InteractionMatrix{"u1": {"h1": float64(n % 5)}})
			_, _, _ = cache.GetMatrix(ctx)
			_ = cache.SetSimilar(ctx, "u1", 10, []SimilarityEntry{{UserID: "u2", Similarity: 0.5}})
			_, _, _ = cache.GetSimilar(ctx, "u1", 10)
		}(i)
	}
	wg.Wait()

	if _, ok, _ := cache.GetMatrix(ctx); !ok {
		t.Error("matrix missing after concurrent population")
	}
}
