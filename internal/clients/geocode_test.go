package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Eiffel Tower", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"48.8582","lon":"2.2945","display_name":"Tour Eiffel, Paris, France"}]`))
	}))
	defer server.Close()

	client := NewGeocodeClientWithURL(server.URL)

	result, err := client.Geocode(context.Background(), "Eiffel Tower")
	require.NoError(t, err)

	assert.Equal(t, "Tour Eiffel, Paris, France", result.Name)
	assert.InDelta(t, 48.8582, result.Latitude, 0.0001)
	assert.InDelta(t, 2.2945, result.Longitude, 0.0001)
}

func TestGeocodeNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewGeocodeClientWithURL(server.URL)

	_, err := client.Geocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
}

func TestGeocodeMalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"not-a-number","lon":"2.2945","display_name":"x"}]`))
	}))
	defer server.Close()

	client := NewGeocodeClientWithURL(server.URL)

	_, err := client.Geocode(context.Background(), "x")
	assert.Error(t, err)
}
