package clients

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// WeatherClient fetches current conditions and the 5-day forecast from
// OpenWeatherMap.
type WeatherClient struct {
	apiKey      string
	weatherURL  string
	forecastURL string
	client      *http.Client
}

const (
	owmWeatherDefault  = "https://api.openweathermap.org/data/2.5/weather"
	owmForecastDefault = "https://api.openweathermap.org/data/2.5/forecast"
)

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:      apiKey,
		weatherURL:  owmWeatherDefault,
		forecastURL: owmForecastDefault,
		client:      newHTTPClient(),
	}
}

// NewWeatherClientWithURLs constructs a WeatherClient pointing at custom URLs (for tests).
func NewWeatherClientWithURLs(weatherURL, forecastURL, apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:      apiKey,
		weatherURL:  weatherURL,
		forecastURL: forecastURL,
		client:      newHTTPClient(),
	}
}

type owmWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

func coordQuery(lat, lon float64) string {
	return "lat=" + strconv.FormatFloat(lat, 'f', -1, 64) +
		"&lon=" + strconv.FormatFloat(lon, 'f', -1, 64)
}

func (c *WeatherClient) FetchCurrent(ctx context.Context, lat, lon float64) (*CurrentWeather, error) {
	endpoint := c.weatherURL + "?" + coordQuery(lat, lon) + "&appid=" + c.apiKey + "&units=metric"

	var raw owmWeatherResponse
	if err := doGet(ctx, c.client, endpoint, nil, &raw); err != nil {
		return nil, fmt.Errorf("openweathermap current for (%f, %f): %w", lat, lon, err)
	}
	if len(raw.Weather) == 0 {
		return nil, fmt.Errorf("openweathermap current for (%f, %f): malformed response", lat, lon)
	}

	return &CurrentWeather{
		Temp:        int(math.Round(raw.Main.Temp)),
		FeelsLike:   int(math.Round(raw.Main.FeelsLike)),
		Humidity:    raw.Main.Humidity,
		Description: raw.Weather[0].Description,
		Icon:        raw.Weather[0].Icon,
		WindSpeed:   raw.Wind.Speed,
		Sunrise:     raw.Sys.Sunrise,
		Sunset:      raw.Sys.Sunset,
	}, nil
}

type owmForecastResponse struct {
	List []owmForecastSlot `json:"list"`
}

type owmForecastSlot struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	DtTxt string `json:"dt_txt"`
}

// FetchForecast collapses the 3-hourly forecast into 5 daily entries,
// preferring the slot closest to midday (hours 11-14, 12:00 winning).
func (c *WeatherClient) FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastEntry, error) {
	endpoint := c.forecastURL + "?" + coordQuery(lat, lon) + "&appid=" + c.apiKey + "&units=metric"

	var raw owmForecastResponse
	if err := doGet(ctx, c.client, endpoint, nil, &raw); err != nil {
		return nil, fmt.Errorf("openweathermap forecast for (%f, %f): %w", lat, lon, err)
	}

	picks := make(map[string]owmForecastSlot)
	var order []string

	for _, slot := range raw.List {
		parts := strings.SplitN(slot.DtTxt, " ", 2)
		if len(parts) != 2 || len(parts[1]) < 2 {
			return nil, fmt.Errorf("openweathermap forecast: malformed timestamp %q", slot.DtTxt)
		}
		date := parts[0]
		hour, err := strconv.Atoi(parts[1][:2])
		if err != nil {
			return nil, fmt.Errorf("openweathermap forecast: malformed timestamp %q", slot.DtTxt)
		}

		_, seen := picks[date]
		if !seen {
			order = append(order, date)
		}

		// Midday slots win only via the exact 12:00 reading; otherwise
		// the first slot seen for a date stands.
		if hour >= 11 && hour <= 14 {
			if !seen || hour == 12 {
				picks[date] = slot
			}
		} else if !seen {
			picks[date] = slot
		}
	}

	entries := make([]ForecastEntry, 0, 5)
	for _, date := range order {
		if len(entries) == 5 {
			break
		}
		p := picks[date]
		description, icon := "", ""
		if len(p.Weather) > 0 {
			description = p.Weather[0].Description
			icon = p.Weather[0].Icon
		}
		entries = append(entries, ForecastEntry{
			Date:        date,
			Temp:        int(math.Round(p.Main.Temp)),
			Description: description,
			Icon:        icon,
		})
	}

	return entries, nil
}
