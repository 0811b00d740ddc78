package db_models

import "github.com/google/uuid"

// ChatMessage is one entry of the append-only per-user conversation log.
type ChatMessage struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Role    string    // "user" or "assistant"
	Content string
}
