package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// PlacesClient searches points of interest on the Foursquare Places API.
type PlacesClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

const fsqDefaultURL = "https://api.foursquare.com/v3/places/search"

const defaultPlacesRadius = 3000

func NewPlacesClient(apiKey string) *PlacesClient {
	return &PlacesClient{apiKey: apiKey, baseURL: fsqDefaultURL, client: newHTTPClient()}
}

// NewPlacesClientWithURL constructs a PlacesClient pointing at a custom base URL (for tests).
func NewPlacesClientWithURL(baseURL, apiKey string) *PlacesClient {
	return &PlacesClient{apiKey: apiKey, baseURL: baseURL, client: newHTTPClient()}
}

type fsqSearchResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Location struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"location"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Geocodes struct {
			Main struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"main"`
		} `json:"geocodes"`
	} `json:"results"`
}

// Search queries places by free text, optionally biased around a coordinate.
// A non-positive radius falls back to the 3km default.
func (c *PlacesClient) Search(ctx context.Context, query string, lat, lon *float64, radius int) ([]Place, error) {
	endpoint := c.baseURL + "?query=" + url.QueryEscape(query) + "&limit=10"
	if lat != nil && lon != nil {
		if radius <= 0 {
			radius = defaultPlacesRadius
		}
		endpoint += "&ll=" + strconv.FormatFloat(*lat, 'f', -1, 64) +
			"," + strconv.FormatFloat(*lon, 'f', -1, 64) +
			"&radius=" + strconv.Itoa(radius)
	}

	headers := map[string]string{
		"Authorization": c.apiKey,
		"Accept":        "application/json",
	}

	var raw fsqSearchResponse
	if err := doGet(ctx, c.client, endpoint, headers, &raw); err != nil {
		return nil, fmt.Errorf("foursquare search for %q: %w", query, err)
	}

	places := make([]Place, 0, len(raw.Results))
	for _, r := range raw.Results {
		category := ""
		if len(r.Categories) > 0 {
			category = r.Categories[0].Name
		}
		places = append(places, Place{
			Name:      r.Name,
			Address:   r.Location.FormattedAddress,
			Category:  category,
			Latitude:  r.Geocodes.Main.Latitude,
			Longitude: r.Geocodes.Main.Longitude,
		})
	}

	return places, nil
}
