package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	PhotoURL     string
	LastLoginAt  int64

	Favorites    []Favorite
	Itineraries  []Itinerary
	ChatMessages []ChatMessage
}
