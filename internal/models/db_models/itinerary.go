package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Itinerary struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Duration    string
	Budget      string
	Interests   pq.StringArray `gorm:"type:text[]"`
	Tips        pq.StringArray `gorm:"type:text[]"`

	Days []ItineraryDay
}

// ItineraryDay numbers are contiguous starting at 1 and match the day
// count derived from the itinerary's duration label.
type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	DayNumber   int
	Title       string
	Notes       string

	Activities []ItineraryActivity
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"type:uuid;index"`
	Position       int
	Time           string
	Activity       string
	Duration       string
	Location       string
}
