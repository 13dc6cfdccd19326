package postgres

import (
	"context"
	"fmt"

	"derlgTravel/business/recommendation"
	"derlgTravel/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

var _ recommendation.InteractionRepository = (*InteractionRepository)(nil)

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

// implicit rating assigned to a completed booking without a review
const implicitBookingRating = 5.0

// GetUserItemMatrix builds the full user-item rating matrix from reviews and
// completed bookings. Explicit review ratings win over the implicit booking
// signal for the same (user, item) pair.
func (r *InteractionRepository) GetUserItemMatrix(ctx context.Context) (domain.InteractionMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	matrix := make(domain.InteractionMatrix)

	var bookings []domain.Booking
	err := r.DB.WithContext(ctx).
		Where("status = ?", domain.BookingStatusCompleted).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	for _, b := range bookings {
		if matrix[b.UserID] == nil {
			matrix[b.UserID] = make(map[string]float64)
		}
		matrix[b.UserID][b.ItemID] = implicitBookingRating
	}

	var reviews []domain.Review
	if err := r.DB.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	for _, rev := range reviews {
		if rev.Rating < 1 || rev.Rating > 5 {
			continue
		}
		if matrix[rev.UserID] == nil {
			matrix[rev.UserID] = make(map[string]float64)
		}
		matrix[rev.UserID][rev.ItemID] = rev.Rating
	}

	return matrix, nil
}

// GetUserInteractions returns one user's row; an empty map signals cold start.
func (r *InteractionRepository) GetUserInteractions(ctx context.Context, userID string) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	interactions := make(map[string]float64)

	var bookings []domain.Booking
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.BookingStatusCompleted).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query user bookings: %w", err)
	}

	for _, b := range bookings {
		interactions[b.ItemID] = implicitBookingRating
	}

	var reviews []domain.Review
	err = r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query user reviews: %w", err)
	}

	for _, rev := range reviews {
		if rev.Rating < 1 || rev.Rating > 5 {
			continue
		}
		interactions[rev.ItemID] = rev.Rating
	}

	return interactions, nil
}
