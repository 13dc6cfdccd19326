package postgres

import (
	"context"
	"errors"
	"fmt"

	"derlgTravel/business/recommendation"
	"derlgTravel/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

var _ recommendation.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// QueryAvailableItems returns typed catalog records of one item type priced
// at or below the raw budget. Hotels and tours resolve into domain.Item here
// so scoring code downstream never sees raw rows.
func (r *CatalogRepository) QueryAvailableItems(
	ctx context.Context,
	itemType domain.ItemType,
	budget float64,
	dates domain.DateRange,
	profile domain.UserProfile,
) ([]domain.Item, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	switch itemType {
	case domain.ItemTypeTour:
		query := r.DB.WithContext(ctx).Where("price_per_person <= ?", budget)
		if profile.Destination != "" {
			query = query.Where("city ILIKE ?", profile.Destination)
		}

		var tours []domain.Tour
		err := query.Find(&tours).Error
		if err != nil {
			return nil, fmt.Errorf("failed to query tours: %w", err)
		}

		items := make([]domain.Item, 0, len(tours))
		for _, t := range tours {
			items = append(items, t.ToItem())
		}
		return items, nil

	default:
		query := r.DB.WithContext(ctx).Where("price_per_night <= ?", budget)
		if profile.Destination != "" {
			query = query.Where("city ILIKE ?", profile.Destination)
		}

		var hotels []domain.Hotel
		err := query.Find(&hotels).Error
		if err != nil {
			return nil, fmt.Errorf("failed to query hotels: %w", err)
		}

		items := make([]domain.Item, 0, len(hotels))
		for _, h := range hotels {
			items = append(items, h.ToItem())
		}
		return items, nil
	}
}

func (r *CatalogRepository) FindHotelByID(ctx context.Context, id string) (domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hotel{}, fmt.Errorf("context error: %w", err)
	}

	var hotel domain.Hotel
	err := r.DB.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Hotel{}, errors.New("hotel not found")
		}
		return domain.Hotel{}, fmt.Errorf("failed to find hotel: %w", err)
	}

	return hotel, nil
}

func (r *CatalogRepository) FindAllHotels(ctx context.Context) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var hotels []domain.Hotel
	if err := r.DB.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to find hotels: %w", err)
	}

	return hotels, nil
}

func (r *CatalogRepository) FindTourByID(ctx context.Context, id string) (domain.Tour, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tour{}, fmt.Errorf("context error: %w", err)
	}

	var tour domain.Tour
	err := r.DB.WithContext(ctx).First(&tour, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tour{}, errors.New("tour not found")
		}
		return domain.Tour{}, fmt.Errorf("failed to find tour: %w", err)
	}

	return tour, nil
}

func (r *CatalogRepository) FindAllTours(ctx context.Context) ([]domain.Tour, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var tours []domain.Tour
	if err := r.DB.WithContext(ctx).Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}

	return tours, nil
}
