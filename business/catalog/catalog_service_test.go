package catalog

import (
	"context"
	"errors"
	"testing"

	"derlgTravel/domain"
)

type fakeCatalogRepo struct {
	hotels []domain.Hotel
	tours  []domain.Tour
	err    error
}

func (f *fakeCatalogRepo) FindHotelByID(ctx context.Context, id string) (domain.Hotel, error) {
	if f.err != nil {
		return domain.Hotel{}, f.err
	}
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, errors.New("hotel not found")
}

func (f *fakeCatalogRepo) FindAllHotels(ctx context.Context) ([]domain.Hotel, error) {
	return f.hotels, f.err
}

func (f *fakeCatalogRepo) FindTourByID(ctx context.Context, id string) (domain.Tour, error) {
	if f.err != nil {
		return domain.Tour{}, f.err
	}
	for _, tr := range f.tours {
		if tr.ID == id {
			return tr, nil
		}
	}
	return domain.Tour{}, errors.New("tour not found")
}

func (f *fakeCatalogRepo) FindAllTours(ctx context.Context) ([]domain.Tour, error) {
	return f.tours, f.err
}

type fakeEventRepo struct {
	events []domain.Event
	err    error
}

func (f *fakeEventRepo) GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error) {
	return f.events, f.err
}

func TestGetAllHotels(t *testing.T) {
	repo := &fakeCatalogRepo{hotels: []domain.Hotel{{ID: "h1"}, {ID: "h2"}}}
	svc := NewCatalogService(repo, &fakeEventRepo{})

	hotels, err := svc.GetAllHotels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(hotels))
	}
}

func TestGetHotelByID(t *testing.T) {
	repo := &fakeCatalogRepo{hotels: []domain.Hotel{{ID: "h1", Name: "Angkor Palace"}}}
	svc := NewCatalogService(repo, &fakeEventRepo{})

	hotel, err := svc.GetHotelByID(context.Background(), "h1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hotel.Name != "Angkor Palace" {
		t.Errorf("unexpected hotel: %+v", hotel)
	}

	if _, err := svc.GetHotelByID(context.Background(), ""); err == nil {
		t.Error("empty id should fail")
	}

	if _, err := svc.GetHotelByID(context.Background(), "missing"); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestGetTourByID(t *testing.T) {
	repo := &fakeCatalogRepo{tours: []domain.Tour{{ID: "t1", Name: "Temple Trek"}}}
	svc := NewCatalogService(repo, &fakeEventRepo{})

	tour, err := svc.GetTourByID(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tour.Name != "Temple Trek" {
		t.Errorf("unexpected tour: %+v", tour)
	}
}

func TestGetEventsInRange_RequiresDates(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, &fakeEventRepo{})

	if _, err := svc.GetEventsInRange(context.Background(), domain.DateRange{}); err == nil {
		t.Error("missing dates should fail")
	}

	if _, err := svc.GetEventsInRange(context.Background(), domain.DateRange{
		CheckIn:  "2025-04-10",
		CheckOut: "2025-04-18",
	}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCatalogService_CancelledContext(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, &fakeEventRepo{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GetAllHotels(ctx); err == nil {
		t.Error("cancelled context should fail")
	}
}
