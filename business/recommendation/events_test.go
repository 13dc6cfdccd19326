package recommendation

import (
	"context"
	"errors"
	"testing"

	"derlgTravel/domain"
)

func scoredHotel(id, city, province string, combined float64) domain.ScoredItem {
	item := testHotel(id, 50, 4.0)
	item.Location.City = city
	item.Location.Province = province
	return domain.ScoredItem{Item: item, CombinedScore: combined}
}

var aprilDates = domain.DateRange{CheckIn: "2025-04-10", CheckOut: "2025-04-18"}

func TestBoostEvents_SameCityFestival(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", Name: "Khmer New Year", EventType: domain.EventTypeFestival, City: "Siem Reap", Province: "Siem Reap"},
	}
	svc := newTestService(nil, nil, events)

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.5)}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	got := boosted[0]
	if !got.HasEvents {
		t.Fatal("expected HasEvents")
	}
	if got.EventCount != 1 {
		t.Errorf("EventCount = %d, want 1", got.EventCount)
	}
	// same-city base plus one festival bonus
	if !almostEqual(got.EventBoost, 0.20) {
		t.Errorf("EventBoost = %f, want 0.20", got.EventBoost)
	}
	if !almostEqual(got.CombinedScore, 0.70) {
		t.Errorf("CombinedScore = %f, want 0.70", got.CombinedScore)
	}
	if len(got.EventHighlights) != 1 {
		t.Fatalf("expected 1 highlight, got %d", len(got.EventHighlights))
	}
	if got.EventHighlights[0].Name != "Khmer New Year" {
		t.Errorf("highlight name = %s", got.EventHighlights[0].Name)
	}
}

func TestBoostEvents_BoostCap(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", EventType: domain.EventTypeFestival, City: "Siem Reap"},
		{ID: "e2", EventType: domain.EventTypeFestival, City: "Siem Reap"},
		{ID: "e3", EventType: domain.EventTypeFestival, City: "Siem Reap"},
	}
	svc := newTestService(nil, nil, events)

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.5)}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	// 0.15 + 3*0.05 would be 0.30; capped at 0.25
	if !almostEqual(boosted[0].EventBoost, defaultMaxEventBoost) {
		t.Errorf("EventBoost = %f, want cap %f", boosted[0].EventBoost, defaultMaxEventBoost)
	}
}

func TestBoostEvents_NearbyOnly(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", EventType: domain.EventTypeFestival, City: "Kralanh", Province: "Siem Reap"},
	}
	svc := newTestService(nil, nil, events)

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.5)}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	if !almostEqual(boosted[0].EventBoost, defaultNearbyBoost) {
		t.Errorf("EventBoost = %f, want nearby %f", boosted[0].EventBoost, defaultNearbyBoost)
	}
}

func TestBoostEvents_CombinedScoreCapped(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", EventType: domain.EventTypeFestival, City: "Siem Reap"},
	}
	svc := newTestService(nil, nil, events)

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.95)}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	if boosted[0].CombinedScore > 1.0 {
		t.Errorf("CombinedScore = %f, must not exceed 1.0", boosted[0].CombinedScore)
	}
}

func TestBoostEvents_ReRanks(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", EventType: domain.EventTypeFestival, City: "Siem Reap"},
	}
	svc := newTestService(nil, nil, events)

	items := []domain.ScoredItem{
		scoredHotel("leader", "Phnom Penh", "Phnom Penh", 0.60),
		scoredHotel("boosted", "Siem Reap", "Siem Reap", 0.55),
	}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	if boosted[0].ID != "boosted" {
		t.Errorf("event boost should promote the Siem Reap hotel, got %s first", boosted[0].ID)
	}
}

func TestBoostEvents_UnreachableSourceLeavesScores(t *testing.T) {
	eventRepo := &fakeEventRepo{err: errors.New("feed down")}
	svc := NewService(&fakeInteractionRepo{}, &fakeCatalogRepo{}, eventRepo, nil, nil, nil, DefaultConfig())

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.5)}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	if boosted[0].HasEvents {
		t.Error("HasEvents should be false when the source is unreachable")
	}
	if !almostEqual(boosted[0].CombinedScore, 0.5) {
		t.Errorf("CombinedScore = %f, want untouched 0.5", boosted[0].CombinedScore)
	}
}

func TestBoostEvents_SkipsWithoutDates(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	svc := NewService(&fakeInteractionRepo{}, &fakeCatalogRepo{}, eventRepo, nil, nil, nil, DefaultConfig())

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.5)}

	svc.boostEvents(context.Background(), items, domain.DateRange{}, DefaultConfig())

	if eventRepo.calls != 0 {
		t.Error("event source must not be queried without travel dates")
	}
}

func TestBoostEvents_CaseInsensitiveCityMatch(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", EventType: domain.EventTypeFestival, City: "siem reap"},
	}
	svc := newTestService(nil, nil, events)

	items := []domain.ScoredItem{scoredHotel("h1", "Siem Reap", "Siem Reap", 0.5)}

	boosted := svc.boostEvents(context.Background(), items, aprilDates, DefaultConfig())

	if !boosted[0].HasEvents {
		t.Error("city matching should ignore case")
	}
}
