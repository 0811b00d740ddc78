package controllers_fx

import (
	"go.uber.org/fx"

	"wanderly/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewExploreController))
