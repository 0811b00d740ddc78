package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderly/internal/repositories"
	"wanderly/internal/services"
)

var Module = fx.Provide(
	provideFavoriteService, provideFavoriteRepo)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo)
}
