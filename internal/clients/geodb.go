package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// GeoDBClient looks up cities by name prefix or id on the GeoDB Cities API
// (RapidAPI-hosted).
type GeoDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

const geoDBDefaultURL = "https://wft-geo-db.p.rapidapi.com/v1/geo"

func NewGeoDBClient(apiKey string) *GeoDBClient {
	return &GeoDBClient{apiKey: apiKey, baseURL: geoDBDefaultURL, client: newHTTPClient()}
}

// NewGeoDBClientWithURL constructs a GeoDBClient pointing at a custom base URL (for tests).
func NewGeoDBClientWithURL(baseURL, apiKey string) *GeoDBClient {
	return &GeoDBClient{apiKey: apiKey, baseURL: baseURL, client: newHTTPClient()}
}

func (c *GeoDBClient) headers() map[string]string {
	return map[string]string{
		"X-RapidAPI-Key":  c.apiKey,
		"X-RapidAPI-Host": "wft-geo-db.p.rapidapi.com",
	}
}

// geoDBCity tolerates the API returning ids as either numbers or strings.
type geoDBCity struct {
	ID        json.Number `json:"id"`
	Name      string      `json:"name"`
	Region    string      `json:"region"`
	Country   string      `json:"country"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}

func (g geoDBCity) toCity() City {
	return City{
		ID:        g.ID.String(),
		Name:      g.Name,
		Region:    g.Region,
		Country:   g.Country,
		Latitude:  g.Latitude,
		Longitude: g.Longitude,
	}
}

type geoDBListResponse struct {
	Data []geoDBCity `json:"data"`
}

type geoDBDetailResponse struct {
	Data geoDBCity `json:"data"`
}

// SearchCities returns up to 10 cities matching the name prefix, largest
// population first.
func (c *GeoDBClient) SearchCities(ctx context.Context, namePrefix string) ([]City, error) {
	endpoint := c.baseURL + "/cities?namePrefix=" + url.QueryEscape(namePrefix) + "&limit=10&sort=-population"

	var raw geoDBListResponse
	if err := doGet(ctx, c.client, endpoint, c.headers(), &raw); err != nil {
		return nil, fmt.Errorf("geodb city search for %q: %w", namePrefix, err)
	}

	cities := make([]City, 0, len(raw.Data))
	for _, g := range raw.Data {
		cities = append(cities, g.toCity())
	}

	return cities, nil
}

func (c *GeoDBClient) GetCityDetails(ctx context.Context, cityId string) (*City, error) {
	endpoint := c.baseURL + "/cities/" + url.PathEscape(cityId)

	var raw geoDBDetailResponse
	if err := doGet(ctx, c.client, endpoint, c.headers(), &raw); err != nil {
		return nil, fmt.Errorf("geodb city details for %s: %w", cityId, err)
	}
	if raw.Data.Name == "" {
		return nil, fmt.Errorf("geodb city details for %s: malformed response", cityId)
	}

	city := raw.Data.toCity()
	return &city, nil
}
