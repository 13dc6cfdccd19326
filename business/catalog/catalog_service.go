package catalog

import (
	"context"
	"errors"
	"fmt"

	"derlgTravel/domain"
	"derlgTravel/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindHotelByID(ctx context.Context, id string) (domain.Hotel, error)
	FindAllHotels(ctx context.Context) ([]domain.Hotel, error)
	FindTourByID(ctx context.Context, id string) (domain.Tour, error)
	FindAllTours(ctx context.Context) ([]domain.Tour, error)
}

type EventRepository interface {
	GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error)
}

type catalogService struct {
	catalogRepo CatalogRepository
	eventRepo   EventRepository
}

func NewCatalogService(catalogRepo CatalogRepository, eventRepo EventRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		eventRepo:   eventRepo,
	}
}

func (s *catalogService) GetAllHotels(ctx context.Context) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	hotels, err := s.catalogRepo.FindAllHotels(ctx)
	if err != nil {
		logger.Error("Failed to find all hotels", "error", err)
		return nil, err
	}

	return hotels, nil
}

func (s *catalogService) GetHotelByID(ctx context.Context, id string) (*domain.Hotel, error) {
	if id == "" {
		return nil, errors.New("invalid hotel id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	hotel, err := s.catalogRepo.FindHotelByID(ctx, id)
	if err != nil {
		logger.Error("failed to find hotel by id", "id", id, "error", err)
		return nil, err
	}

	return &hotel, nil
}

func (s *catalogService) GetAllTours(ctx context.Context) ([]domain.Tour, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	tours, err := s.catalogRepo.FindAllTours(ctx)
	if err != nil {
		logger.Error("Failed to find all tours", "error", err)
		return nil, err
	}

	return tours, nil
}

func (s *catalogService) GetTourByID(ctx context.Context, id string) (*domain.Tour, error) {
	if id == "" {
		return nil, errors.New("invalid tour id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	tour, err := s.catalogRepo.FindTourByID(ctx, id)
	if err != nil {
		logger.Error("failed to find tour by id", "id", id, "error", err)
		return nil, err
	}

	return &tour, nil
}

func (s *catalogService) GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if dates.CheckIn == "" || dates.CheckOut == "" {
		return nil, errors.New("check_in and check_out are required")
	}

	events, err := s.eventRepo.GetEventsInRange(ctx, dates)
	if err != nil {
		logger.Error("Failed to find events in range", "error", err)
		return nil, err
	}

	return events, nil
}
