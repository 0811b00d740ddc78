package request_models

type AddFavoriteRequest struct {
	DestinationID string `json:"destination_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Country       string `json:"country" binding:"required"`
	ImageURL      string `json:"image_url"`
}
