package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderly/internal/repositories"
	"wanderly/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, providePlannerService, provideItineraryRepo)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}

func providePlannerService() services.PlannerServiceInterface {
	return services.NewPlannerService()
}
