package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GeocodeClient resolves free-text place names to coordinates via the
// Nominatim (OpenStreetMap) search endpoint.
type GeocodeClient struct {
	baseURL string
	client  *http.Client
}

const nominatimDefaultURL = "https://nominatim.openstreetmap.org/search"

func NewGeocodeClient() *GeocodeClient {
	return &GeocodeClient{baseURL: nominatimDefaultURL, client: newHTTPClient()}
}

// NewGeocodeClientWithURL constructs a GeocodeClient pointing at a custom base URL (for tests).
func NewGeocodeClientWithURL(baseURL string) *GeocodeClient {
	return &GeocodeClient{baseURL: baseURL, client: newHTTPClient()}
}

type nominatimEntry struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the best match for the given place name, or an error when
// nothing matches.
func (c *GeocodeClient) Geocode(ctx context.Context, place string) (*GeocodeResult, error) {
	endpoint := c.baseURL + "?q=" + url.QueryEscape(place) + "&format=json&limit=1"

	headers := map[string]string{"User-Agent": "wanderly/1.0"}

	var raw []nominatimEntry
	if err := doGet(ctx, c.client, endpoint, headers, &raw); err != nil {
		return nil, fmt.Errorf("nominatim geocode for %q: %w", place, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("nominatim geocode for %q: no match", place)
	}

	lat, err := strconv.ParseFloat(raw[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim geocode for %q: malformed latitude %q", place, raw[0].Lat)
	}
	lon, err := strconv.ParseFloat(raw[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim geocode for %q: malformed longitude %q", place, raw[0].Lon)
	}

	return &GeocodeResult{
		Name:      raw[0].DisplayName,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
