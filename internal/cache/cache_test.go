package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly/internal/clients"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client), mr
}

func TestCityRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	city := &clients.City{
		ID:        "123",
		Name:      "Paris",
		Region:    "Ile-de-France",
		Country:   "France",
		Latitude:  48.85,
		Longitude: 2.35,
	}

	require.NoError(t, c.SetCity(ctx, city))

	got, err := c.GetCity(ctx, "123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, city, got)
}

func TestCityMissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.GetCity(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCityExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetCity(ctx, &clients.City{ID: "9", Name: "Oslo"}))

	mr.FastForward(time.Hour + time.Minute)

	got, err := c.GetCity(ctx, "9")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeatherRoundTripAndKeyRounding(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	weather := &clients.CurrentWeather{
		Temp:        22,
		FeelsLike:   20,
		Humidity:    65,
		Description: "clear sky",
		Icon:        "01d",
		WindSpeed:   4.1,
	}

	require.NoError(t, c.SetWeather(ctx, 48.8566, 2.3522, weather))

	// Coordinates within the same two-decimal bucket share an entry.
	got, err := c.GetWeather(ctx, 48.8561, 2.3518)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, weather, got)

	// A different bucket misses.
	got, err = c.GetWeather(ctx, 48.87, 2.35)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeatherExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetWeather(ctx, 1, 1, &clients.CurrentWeather{Temp: 10}))

	mr.FastForward(11 * time.Minute)

	got, err := c.GetWeather(ctx, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetNilIsNoop(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	assert.NoError(t, c.SetCity(ctx, nil))
	assert.NoError(t, c.SetWeather(ctx, 0, 0, nil))
}
