package response_models

type FavoriteResponse struct {
	ID            string `json:"id"`
	DestinationID string `json:"destination_id"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	ImageURL      string `json:"image_url,omitempty"`
	AddedAt       string `json:"added_at"`
}
