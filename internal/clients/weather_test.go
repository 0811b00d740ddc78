package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "48.85", r.URL.Query().Get("lat"))
		assert.Equal(t, "2.35", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"main": {"temp": 21.6, "feels_like": 20.4, "humidity": 65},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"wind": {"speed": 4.1},
			"sys": {"sunrise": 1700000000, "sunset": 1700040000}
		}`))
	}))
	defer server.Close()

	client := NewWeatherClientWithURLs(server.URL, server.URL, "test-key")

	weather, err := client.FetchCurrent(context.Background(), 48.85, 2.35)
	require.NoError(t, err)

	assert.Equal(t, 22, weather.Temp) // rounded
	assert.Equal(t, 20, weather.FeelsLike)
	assert.Equal(t, 65, weather.Humidity)
	assert.Equal(t, "scattered clouds", weather.Description)
	assert.Equal(t, "03d", weather.Icon)
	assert.InDelta(t, 4.1, weather.WindSpeed, 0.001)
	assert.Equal(t, int64(1700000000), weather.Sunrise)
}

func TestFetchCurrentMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main": {"temp": 10}, "weather": []}`))
	}))
	defer server.Close()

	client := NewWeatherClientWithURLs(server.URL, server.URL, "test-key")

	_, err := client.FetchCurrent(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestFetchForecastMiddayGrouping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list":[
			{"dt_txt":"2026-09-01 06:00:00","main":{"temp":14.2},"weather":[{"description":"mist","icon":"50d"}]},
			{"dt_txt":"2026-09-01 12:00:00","main":{"temp":22.7},"weather":[{"description":"clear sky","icon":"01d"}]},
			{"dt_txt":"2026-09-01 15:00:00","main":{"temp":24.0},"weather":[{"description":"clear sky","icon":"01d"}]},
			{"dt_txt":"2026-09-02 09:00:00","main":{"temp":17.1},"weather":[{"description":"few clouds","icon":"02d"}]},
			{"dt_txt":"2026-09-02 11:00:00","main":{"temp":19.9},"weather":[{"description":"broken clouds","icon":"04d"}]},
			{"dt_txt":"2026-09-03 00:00:00","main":{"temp":11.5},"weather":[{"description":"clear sky","icon":"01n"}]},
			{"dt_txt":"2026-09-04 03:00:00","main":{"temp":12.0},"weather":[{"description":"rain","icon":"10n"}]},
			{"dt_txt":"2026-09-05 06:00:00","main":{"temp":13.0},"weather":[{"description":"rain","icon":"10d"}]},
			{"dt_txt":"2026-09-06 06:00:00","main":{"temp":15.0},"weather":[{"description":"clear sky","icon":"01d"}]}
		]}`))
	}))
	defer server.Close()

	client := NewWeatherClientWithURLs(server.URL, server.URL, "test-key")

	entries, err := client.FetchForecast(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	// 12:00 beats the earlier 06:00 reading.
	assert.Equal(t, "2026-09-01", entries[0].Date)
	assert.Equal(t, 23, entries[0].Temp)
	assert.Equal(t, "clear sky", entries[0].Description)

	// An 11:00 slot does not displace the first-seen 09:00 reading.
	assert.Equal(t, "2026-09-02", entries[1].Date)
	assert.Equal(t, 17, entries[1].Temp)
	assert.Equal(t, "few clouds", entries[1].Description)

	// Days without midday slots keep their first reading; only 5 days emitted.
	assert.Equal(t, "2026-09-03", entries[2].Date)
	assert.Equal(t, "2026-09-04", entries[3].Date)
	assert.Equal(t, "2026-09-05", entries[4].Date)
}

func TestFetchForecastMalformedTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list":[{"dt_txt":"garbage","main":{"temp":1}}]}`))
	}))
	defer server.Close()

	client := NewWeatherClientWithURLs(server.URL, server.URL, "test-key")

	_, err := client.FetchForecast(context.Background(), 0, 0)
	assert.Error(t, err)
}
