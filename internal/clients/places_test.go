package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "coffee", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "48.85,2.35", r.URL.Query().Get("ll"))
		assert.Equal(t, "3000", r.URL.Query().Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{
				"name": "Cafe de Flore",
				"location": {"formatted_address": "172 Boulevard Saint-Germain, Paris"},
				"categories": [{"name": "Cafe"}, {"name": "Restaurant"}],
				"geocodes": {"main": {"latitude": 48.854, "longitude": 2.333}}
			},
			{
				"name": "Unnamed Kiosk",
				"location": {"formatted_address": "Somewhere"},
				"categories": [],
				"geocodes": {"main": {"latitude": 48.9, "longitude": 2.3}}
			}
		]}`))
	}))
	defer server.Close()

	client := NewPlacesClientWithURL(server.URL, "test-key")

	lat, lon := 48.85, 2.35
	places, err := client.Search(context.Background(), "coffee", &lat, &lon, 0)
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "Cafe de Flore", places[0].Name)
	assert.Equal(t, "172 Boulevard Saint-Germain, Paris", places[0].Address)
	assert.Equal(t, "Cafe", places[0].Category) // first category wins
	assert.InDelta(t, 48.854, places[0].Latitude, 0.001)

	assert.Empty(t, places[1].Category)
}

func TestPlacesSearchWithoutCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("ll"))
		assert.Empty(t, r.URL.Query().Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewPlacesClientWithURL(server.URL, "test-key")

	places, err := client.Search(context.Background(), "museum", nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestPlacesSearchCustomRadius(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "500", r.URL.Query().Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewPlacesClientWithURL(server.URL, "test-key")

	lat, lon := 51.5, -0.12
	_, err := client.Search(context.Background(), "pub", &lat, &lon, 500)
	require.NoError(t, err)
}
