package domain

import "time"

// Review carries an explicit 1-5 rating a user left for a hotel or tour.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"`
	ItemID    string    `gorm:"column:item_id;not null" json:"item_id"`
	Rating    float64   `gorm:"column:rating;type:numeric;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// Booking is read as an implicit positive interaction once completed.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"`
	ItemID    string    `gorm:"column:item_id;not null" json:"item_id"`
	Status    string    `gorm:"column:status;type:text" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

const BookingStatusCompleted = "completed"

// InteractionMatrix maps user id -> item id -> rating (1-5). It is built once
// from reviews and completed bookings and treated as a read-only snapshot
// during scoring.
type InteractionMatrix map[string]map[string]float64
