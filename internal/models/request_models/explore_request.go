package request_models

type SearchSessionInputRequest struct {
	Query string `json:"query"`
}

type SearchSessionSelectRequest struct {
	CityID string `json:"city_id" binding:"required"`
}

type PlacesSearchRequest struct {
	Query     string   `json:"query" binding:"required"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Radius    int      `json:"radius"`
}
