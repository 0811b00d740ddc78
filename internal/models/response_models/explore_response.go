package response_models

import "wanderly/internal/clients"

type SearchSessionCreatedResponse struct {
	SessionID string `json:"session_id"`
}

type SearchSelectionResponse struct {
	City  clients.City `json:"city"`
	Label string       `json:"label"`
}

type WeatherResponse struct {
	Current  clients.CurrentWeather  `json:"current"`
	Forecast []clients.ForecastEntry `json:"forecast"`
}
