package db_models

import "github.com/google/uuid"

// Favorite is a user's saved reference to a destination. One row per
// (user, destination) pair is advisory only: callers pre-check with an
// existence query, the table carries no unique constraint.
type Favorite struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	DestinationID string    `gorm:"index"`
	Name          string
	Country       string
	ImageURL      string
}
