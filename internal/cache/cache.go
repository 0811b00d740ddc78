package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"wanderly/internal/clients"
)

const (
	cityTTL    = time.Hour
	weatherTTL = 10 * time.Minute
)

// Cache wraps a Redis client and provides typed get/set for city detail and
// current-weather lookups. Misses return (nil, nil); callers fall back to a
// direct fetch on any cache error.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func cityKey(cityId string) string {
	return "city:" + cityId
}

// weatherKey rounds coordinates to two decimals so nearby lookups share an entry.
func weatherKey(lat, lon float64) string {
	return "weather:" + strconv.FormatFloat(lat, 'f', 2, 64) + "," + strconv.FormatFloat(lon, 'f', 2, 64)
}

func (c *Cache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) GetCity(ctx context.Context, cityId string) (*clients.City, error) {
	var city clients.City
	ok, err := c.getJSON(ctx, cityKey(cityId), &city)
	if err != nil || !ok {
		return nil, err
	}
	return &city, nil
}

func (c *Cache) SetCity(ctx context.Context, city *clients.City) error {
	if city == nil {
		return nil
	}
	return c.setJSON(ctx, cityKey(city.ID), city, cityTTL)
}

func (c *Cache) GetWeather(ctx context.Context, lat, lon float64) (*clients.CurrentWeather, error) {
	var weather clients.CurrentWeather
	ok, err := c.getJSON(ctx, weatherKey(lat, lon), &weather)
	if err != nil || !ok {
		return nil, err
	}
	return &weather, nil
}

func (c *Cache) SetWeather(ctx context.Context, lat, lon float64, weather *clients.CurrentWeather) error {
	if weather == nil {
		return nil
	}
	return c.setJSON(ctx, weatherKey(lat, lon), weather, weatherTTL)
}
