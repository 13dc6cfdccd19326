package domain

import (
	"time"
)

type ItemType string

const (
	ItemTypeHotel ItemType = "hotel"
	ItemTypeTour  ItemType = "tour"
)

type Location struct {
	City      string  `json:"city"`
	Province  string  `json:"province"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// CREATE TABLE public.hotels (
//     id              TEXT PRIMARY KEY,
//     name            TEXT NOT NULL,
//     price_per_night NUMERIC NOT NULL,
//     currency        TEXT DEFAULT 'USD',
//     average_rating  NUMERIC DEFAULT 0,
//     amenities       JSONB,
//     city            TEXT,
//     province        TEXT,
//     latitude        NUMERIC,
//     longitude       NUMERIC,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Hotel struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"column:name;type:text;not null" json:"name"`
	PricePerNight float64   `gorm:"column:price_per_night;type:numeric" json:"price_per_night"`
	Currency      string    `gorm:"column:currency;type:text" json:"currency"`
	AverageRating float64   `gorm:"column:average_rating;type:numeric" json:"average_rating"`
	Amenities     []string  `gorm:"column:amenities;serializer:json" json:"amenities"`
	City          string    `gorm:"column:city;type:text" json:"city"`
	Province      string    `gorm:"column:province;type:text" json:"province"`
	Latitude      float64   `gorm:"column:latitude;type:numeric" json:"latitude"`
	Longitude     float64   `gorm:"column:longitude;type:numeric" json:"longitude"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Hotel) TableName() string {
	return "hotels"
}

type Tour struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"column:name;type:text;not null" json:"name"`
	PricePerPerson float64   `gorm:"column:price_per_person;type:numeric" json:"price_per_person"`
	Currency       string    `gorm:"column:currency;type:text" json:"currency"`
	AverageRating  float64   `gorm:"column:average_rating;type:numeric" json:"average_rating"`
	DurationDays   int       `gorm:"column:duration_days" json:"duration_days"`
	Difficulty     string    `gorm:"column:difficulty;type:text" json:"difficulty"`
	Categories     []string  `gorm:"column:categories;serializer:json" json:"categories"`
	City           string    `gorm:"column:city;type:text" json:"city"`
	Province       string    `gorm:"column:province;type:text" json:"province"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tour) TableName() string {
	return "tours"
}

// Item is the unified catalog record the engine scores. Hotels and tours are
// resolved into it at the repository boundary so scoring code never pokes at
// raw rows with optional fields.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          ItemType `json:"type"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	AverageRating float64  `json:"average_rating"`
	Amenities     []string `json:"amenities,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Location      Location `json:"location"`

	// tour-only fields; zero for hotels
	DurationDays int    `json:"duration_days,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
}

func (h Hotel) ToItem() Item {
	return Item{
		ID:            h.ID,
		Name:          h.Name,
		Type:          ItemTypeHotel,
		Price:         h.PricePerNight,
		Currency:      h.Currency,
		AverageRating: h.AverageRating,
		Amenities:     h.Amenities,
		Location: Location{
			City:      h.City,
			Province:  h.Province,
			Latitude:  h.Latitude,
			Longitude: h.Longitude,
		},
	}
}

func (t Tour) ToItem() Item {
	return Item{
		ID:            t.ID,
		Name:          t.Name,
		Type:          ItemTypeTour,
		Price:         t.PricePerPerson,
		Currency:      t.Currency,
		AverageRating: t.AverageRating,
		Categories:    t.Categories,
		DurationDays:  t.DurationDays,
		Difficulty:    t.Difficulty,
		Location: Location{
			City:     t.City,
			Province: t.Province,
		},
	}
}
