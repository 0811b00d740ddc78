package services

import (
	"context"
	"log"
	"strings"

	"wanderly/internal/cache"
	"wanderly/internal/clients"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/search"
	"wanderly/pkg/utils"
)

// WeatherFetcher, PlacesSearcher and Geocoder mirror the concrete client
// surfaces so tests can stand in for the remote APIs.
type WeatherFetcher interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (*clients.CurrentWeather, error)
	FetchForecast(ctx context.Context, lat, lon float64) ([]clients.ForecastEntry, error)
}

type PlacesSearcher interface {
	Search(ctx context.Context, query string, lat, lon *float64, radius int) ([]clients.Place, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, place string) (*clients.GeocodeResult, error)
}

// CityLookupClient extends the search session lookup with detail fetches.
type CityLookupClient interface {
	search.CityClient
	GetCityDetails(ctx context.Context, cityId string) (*clients.City, error)
}

type ExploreServiceInterface interface {
	CreateSearchSession() response_models.SearchSessionCreatedResponse
	SearchInput(sessionId string, request request_models.SearchSessionInputRequest) error
	SearchSnapshot(sessionId string) (*search.Snapshot, error)
	SearchSelect(sessionId string, request request_models.SearchSessionSelectRequest) (*response_models.SearchSelectionResponse, error)
	DismissSearchSession(sessionId string)

	SearchCities(ctx context.Context, query string) ([]clients.City, error)
	GetCityDetails(ctx context.Context, cityId string) (*clients.City, error)
	GetWeather(ctx context.Context, lat, lon float64) (*response_models.WeatherResponse, error)
	SearchPlaces(ctx context.Context, request request_models.PlacesSearchRequest) ([]clients.Place, error)
	Geocode(ctx context.Context, place string) (*clients.GeocodeResult, error)
}

type ExploreService struct {
	cities   CityLookupClient
	weather  WeatherFetcher
	places   PlacesSearcher
	geocoder Geocoder
	cache    *cache.Cache
	sessions *search.SessionStore
}

func NewExploreService(
	cities CityLookupClient,
	weather WeatherFetcher,
	places PlacesSearcher,
	geocoder Geocoder,
	responseCache *cache.Cache,
	sessions *search.SessionStore,
) ExploreServiceInterface {
	return &ExploreService{
		cities:   cities,
		weather:  weather,
		places:   places,
		geocoder: geocoder,
		cache:    responseCache,
		sessions: sessions,
	}
}

func (e *ExploreService) CreateSearchSession() response_models.SearchSessionCreatedResponse {
	id := e.sessions.Create(search.NewSearcher(e.cities))
	return response_models.SearchSessionCreatedResponse{SessionID: id}
}

func (e *ExploreService) SearchInput(sessionId string, request request_models.SearchSessionInputRequest) error {
	searcher, ok := e.sessions.Get(sessionId)
	if !ok {
		return utils.ErrNotFoundOrUnauthorized
	}

	searcher.Input(request.Query)
	return nil
}

func (e *ExploreService) SearchSnapshot(sessionId string) (*search.Snapshot, error) {
	searcher, ok := e.sessions.Get(sessionId)
	if !ok {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	snapshot := searcher.Snapshot()
	return &snapshot, nil
}

func (e *ExploreService) SearchSelect(sessionId string, request request_models.SearchSessionSelectRequest) (*response_models.SearchSelectionResponse, error) {
	searcher, ok := e.sessions.Get(sessionId)
	if !ok {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	city, label, ok := searcher.Select(request.CityID)
	if !ok {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	return &response_models.SearchSelectionResponse{City: *city, Label: label}, nil
}

func (e *ExploreService) DismissSearchSession(sessionId string) {
	e.sessions.Delete(sessionId)
}

// SearchCities is the direct, non-debounced lookup. Queries shorter than
// three characters return an empty list without touching the remote API,
// same as a search session.
func (e *ExploreService) SearchCities(ctx context.Context, query string) ([]clients.City, error) {
	if len(strings.TrimSpace(query)) < 3 {
		return []clients.City{}, nil
	}

	cities, err := e.cities.SearchCities(ctx, query)
	if err != nil {
		log.Printf("City search failed: %v", err)
		return nil, utils.ErrRemoteService
	}

	return cities, nil
}

func (e *ExploreService) GetCityDetails(ctx context.Context, cityId string) (*clients.City, error) {
	if cached, err := e.cache.GetCity(ctx, cityId); err == nil && cached != nil {
		return cached, nil
	}

	city, err := e.cities.GetCityDetails(ctx, cityId)
	if err != nil {
		log.Printf("City detail lookup failed: %v", err)
		return nil, utils.ErrRemoteService
	}
	if city == nil {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	if err := e.cache.SetCity(ctx, city); err != nil {
		log.Printf("Failed to cache city %s: %v", city.ID, err)
	}

	return city, nil
}

// GetWeather returns current conditions plus the 5-day forecast. Only the
// current block is cached; the forecast grouping is recomputed per call.
func (e *ExploreService) GetWeather(ctx context.Context, lat, lon float64) (*response_models.WeatherResponse, error) {
	current, err := e.cache.GetWeather(ctx, lat, lon)
	if err != nil || current == nil {
		current, err = e.weather.FetchCurrent(ctx, lat, lon)
		if err != nil {
			log.Printf("Weather lookup failed: %v", err)
			return nil, utils.ErrRemoteService
		}
		if err := e.cache.SetWeather(ctx, lat, lon, current); err != nil {
			log.Printf("Failed to cache weather: %v", err)
		}
	}

	forecast, err := e.weather.FetchForecast(ctx, lat, lon)
	if err != nil {
		log.Printf("Forecast lookup failed: %v", err)
		return nil, utils.ErrRemoteService
	}

	return &response_models.WeatherResponse{
		Current:  *current,
		Forecast: forecast,
	}, nil
}

func (e *ExploreService) SearchPlaces(ctx context.Context, request request_models.PlacesSearchRequest) ([]clients.Place, error) {
	places, err := e.places.Search(ctx, request.Query, request.Latitude, request.Longitude, request.Radius)
	if err != nil {
		log.Printf("Places search failed: %v", err)
		return nil, utils.ErrRemoteService
	}

	return places, nil
}

func (e *ExploreService) Geocode(ctx context.Context, place string) (*clients.GeocodeResult, error) {
	result, err := e.geocoder.Geocode(ctx, place)
	if err != nil {
		log.Printf("Geocoding failed: %v", err)
		return nil, utils.ErrRemoteService
	}
	if result == nil {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	return result, nil
}
