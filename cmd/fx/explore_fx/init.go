package explore_fx

import (
	"os"

	"go.uber.org/fx"

	"wanderly/internal/cache"
	"wanderly/internal/clients"
	"wanderly/internal/search"
	"wanderly/internal/services"
)

var Module = fx.Provide(
	provideExploreService,
	provideGeoDBClient,
	provideWeatherClient,
	providePlacesClient,
	provideGeocodeClient,
	provideSessionStore,
)

func provideGeoDBClient() *clients.GeoDBClient {
	return clients.NewGeoDBClient(os.Getenv("RAPIDAPI_KEY"))
}

func provideWeatherClient() *clients.WeatherClient {
	return clients.NewWeatherClient(os.Getenv("OPENWEATHER_API_KEY"))
}

func providePlacesClient() *clients.PlacesClient {
	return clients.NewPlacesClient(os.Getenv("FOURSQUARE_API_KEY"))
}

func provideGeocodeClient() *clients.GeocodeClient {
	return clients.NewGeocodeClient()
}

func provideSessionStore() *search.SessionStore {
	return search.NewSessionStore()
}

func provideExploreService(
	geoDB *clients.GeoDBClient,
	weather *clients.WeatherClient,
	places *clients.PlacesClient,
	geocoder *clients.GeocodeClient,
	responseCache *cache.Cache,
	sessions *search.SessionStore,
) services.ExploreServiceInterface {
	return services.NewExploreService(geoDB, weather, places, geocoder, responseCache, sessions)
}
