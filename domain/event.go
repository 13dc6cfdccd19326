package domain

import "time"

// CREATE TABLE public.events (
//     id                    TEXT PRIMARY KEY,
//     name                  TEXT NOT NULL,
//     event_type            TEXT,
//     city                  TEXT,
//     province              TEXT,
//     start_date            DATE,
//     end_date              DATE,
//     cultural_significance TEXT,
//     created_at            TIMESTAMPTZ DEFAULT NOW()
// );

type Event struct {
	ID                   string    `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"column:name;type:text;not null" json:"name"`
	EventType            string    `gorm:"column:event_type;type:text" json:"event_type"`
	City                 string    `gorm:"column:city;type:text" json:"city"`
	Province             string    `gorm:"column:province;type:text" json:"province"`
	StartDate            string    `gorm:"column:start_date" json:"start_date"`
	EndDate              string    `gorm:"column:end_date" json:"end_date"`
	CulturalSignificance string    `gorm:"column:cultural_significance;type:text" json:"cultural_significance"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

const EventTypeFestival = "festival"
