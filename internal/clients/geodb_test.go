package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "wft-geo-db.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))
		assert.Equal(t, "/cities", r.URL.Path)
		assert.Equal(t, "par", r.URL.Query().Get("namePrefix"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "-population", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":123,"name":"Paris","region":"Ile-de-France","country":"France","latitude":48.85,"longitude":2.35},
			{"id":"456","name":"Parma","region":"Emilia-Romagna","country":"Italy","latitude":44.8,"longitude":10.33}
		]}`))
	}))
	defer server.Close()

	client := NewGeoDBClientWithURL(server.URL, "test-key")

	cities, err := client.SearchCities(context.Background(), "par")
	require.NoError(t, err)
	require.Len(t, cities, 2)

	assert.Equal(t, "123", cities[0].ID)
	assert.Equal(t, "Paris", cities[0].Name)
	assert.Equal(t, "France", cities[0].Country)
	assert.InDelta(t, 48.85, cities[0].Latitude, 0.001)

	// string ids survive unchanged
	assert.Equal(t, "456", cities[1].ID)
}

func TestSearchCitiesRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeoDBClientWithURL(server.URL, "test-key")

	_, err := client.SearchCities(context.Background(), "par")
	assert.Error(t, err)
}

func TestGetCityDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cities/123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":123,"name":"Paris","region":"Ile-de-France","country":"France","latitude":48.85,"longitude":2.35}}`))
	}))
	defer server.Close()

	client := NewGeoDBClientWithURL(server.URL, "test-key")

	city, err := client.GetCityDetails(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Paris", city.Name)
	assert.Equal(t, "Ile-de-France", city.Region)
}

func TestGetCityDetailsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewGeoDBClientWithURL(server.URL, "test-key")

	_, err := client.GetCityDetails(context.Background(), "999")
	assert.Error(t, err)
}
