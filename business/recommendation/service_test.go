package recommendation

import (
	"context"
	"errors"
	"testing"

	"derlgTravel/domain"
)

var errTest = errors.New("test error")

// ---- fakes shared across the package tests ----

type fakeInteractionRepo struct {
	matrix domain.InteractionMatrix
	err    error
}

func (f *fakeInteractionRepo) GetUserItemMatrix(ctx context.Context) (domain.InteractionMatrix, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matrix, nil
}

func (f *fakeInteractionRepo) GetUserInteractions(ctx context.Context, userID string) (map[string]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matrix[userID], nil
}

type fakeCatalogRepo struct {
	items []domain.Item
	err   error
}

func (f *fakeCatalogRepo) QueryAvailableItems(ctx context.Context, itemType domain.ItemType, budget float64, dates domain.DateRange, profile domain.UserProfile) ([]domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeEventRepo struct {
	events []domain.Event
	err    error
	calls  int
}

func (f *fakeEventRepo) GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func newTestService(matrix domain.InteractionMatrix, items []domain.Item, events []domain.Event) *Service {
	return NewService(
		&fakeInteractionRepo{matrix: matrix},
		&fakeCatalogRepo{items: items},
		&fakeEventRepo{events: events},
		nil,
		NewMemoryCache(),
		nil,
		DefaultConfig(),
	)
}

func testHotel(id string, price, rating float64, amenities ...string) domain.Item {
	return domain.Item{
		ID:            id,
		Name:          "Hotel " + id,
		Type:          domain.ItemTypeHotel,
		Price:         price,
		Currency:      "USD",
		AverageRating: rating,
		Amenities:     amenities,
		Location: domain.Location{
			City:      "Siem Reap",
			Province:  "Siem Reap",
			Latitude:  13.36,
			Longitude: 103.86,
		},
	}
}

// ---- end-to-end pipeline ----

func TestGetRecommendations_EmptyCatalog(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	recs, err := svc.GetRecommendations(context.Background(), Request{
		UserID: "u1",
		Budget: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d items", len(recs))
	}
}

func TestGetRecommendations_CatalogErrorDegradesToEmpty(t *testing.T) {
	svc := NewService(
		&fakeInteractionRepo{},
		&fakeCatalogRepo{err: errors.New("db down")},
		&fakeEventRepo{},
		nil, nil, nil,
		DefaultConfig(),
	)

	recs, err := svc.GetRecommendations(context.Background(), Request{UserID: "u1", Budget: 100})
	if err != nil {
		t.Fatalf("engine faults must not surface as errors, got: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d", len(recs))
	}
}

func TestGetRecommendations_ScoreAndConfidenceRanges(t *testing.T) {
	items := []domain.Item{
		testHotel("h1", 70, 4.8, "wifi", "pool"),
		testHotel("h2", 50, 4.0, "wifi"),
		testHotel("h3", 30, 3.2),
		testHotel("h4", 85, 4.9, "wifi", "pool", "spa"),
	}
	matrix := domain.InteractionMatrix{
		"u1": {"h1": 5, "h2": 3},
		"u2": {"h1": 5, "h2": 3, "h3": 4},
		"u3": {"h1": 4, "h3": 2, "h4": 5},
	}

	svc := newTestService(matrix, items, nil)

	recs, err := svc.GetRecommendations(context.Background(), Request{
		UserID: "u1",
		Budget: 100,
		Profile: domain.UserProfile{
			PreferredAmenities: []string{"wifi", "pool"},
			TravelStyle:        domain.TravelStyleBalanced,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	for _, r := range recs {
		if r.RecommendationScore < 0 || r.RecommendationScore > 1 {
			t.Errorf("item %s: recommendation score %f out of [0,1]", r.ID, r.RecommendationScore)
		}
		if r.ValueScore < 0 || r.ValueScore > 1 {
			t.Errorf("item %s: value score %f out of [0,1]", r.ID, r.ValueScore)
		}
		if r.CombinedScore < 0 || r.CombinedScore > 1 {
			t.Errorf("item %s: combined score %f out of [0,1]", r.ID, r.CombinedScore)
		}
		if r.Confidence < 0 || r.Confidence > 100 {
			t.Errorf("item %s: confidence %d out of [0,100]", r.ID, r.Confidence)
		}
		if len(r.RecommendationReasons) == 0 {
			t.Errorf("item %s: no recommendation reasons", r.ID)
		}
	}

	for i := 1; i < len(recs); i++ {
		if recs[i-1].CombinedScore < recs[i].CombinedScore {
			t.Errorf("results not sorted: %f before %f", recs[i-1].CombinedScore, recs[i].CombinedScore)
		}
	}
}

func TestGetRecommendations_TruncatesToMaxResults(t *testing.T) {
	var items []domain.Item
	for i := 0; i < 25; i++ {
		items = append(items, testHotel(string(rune('a'+i)), float64(20+i), 4.0))
	}

	svc := newTestService(nil, items, nil)

	recs, err := svc.GetRecommendations(context.Background(), Request{UserID: "u1", Budget: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) > defaultMaxResults {
		t.Fatalf("expected at most %d results, got %d", defaultMaxResults, len(recs))
	}
}

func TestGetRecommendations_DefaultsToHotelType(t *testing.T) {
	svc := newTestService(nil, []domain.Item{testHotel("h1", 50, 4.0)}, nil)

	recs, err := svc.GetRecommendations(context.Background(), Request{UserID: "u1", Budget: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 result, got %d", len(recs))
	}
	if recs[0].Type != domain.ItemTypeHotel {
		t.Fatalf("expected hotel, got %s", recs[0].Type)
	}
}

func TestGetRecommendations_CancelledContext(t *testing.T) {
	svc := newTestService(nil, []domain.Item{testHotel("h1", 50, 4.0)}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GetRecommendations(ctx, Request{UserID: "u1", Budget: 100}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestClearCache(t *testing.T) {
	cache := NewMemoryCache()
	svc := NewService(&fakeInteractionRepo{}, &fakeCatalogRepo{}, &fakeEventRepo{}, nil, cache, nil, DefaultConfig())

	ctx := context.Background()
	if err := cache.SetMatrix(ctx, domain.InteractionMatrix{"u1": {"h1": 5}}); err != nil {
		t.Fatalf("set matrix: %v", err)
	}

	if err := svc.ClearCache(ctx); err != nil {
		t.Fatalf("clear cache: %v", err)
	}

	if _, ok, _ := cache.GetMatrix(ctx); ok {
		t.Fatal("matrix should be gone after clear")
	}
}
