package postgres

import (
	"context"
	"fmt"

	"derlgTravel/business/recommendation"
	"derlgTravel/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

var _ recommendation.EventRepository = (*EventRepository)(nil)

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// GetEventsInRange returns events whose dates overlap the travel window.
func (r *EventRepository) GetEventsInRange(ctx context.Context, dates domain.DateRange) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.Event
	err := r.DB.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", dates.CheckOut, dates.CheckIn).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return events, nil
}
