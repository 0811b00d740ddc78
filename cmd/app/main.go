package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wanderly/cmd/fx/account_fx"
	"wanderly/cmd/fx/assistant_fx"
	"wanderly/cmd/fx/chat_fx"
	"wanderly/cmd/fx/controllers_fx"
	"wanderly/cmd/fx/db_fx"
	"wanderly/cmd/fx/explore_fx"
	"wanderly/cmd/fx/favorite_fx"
	"wanderly/cmd/fx/itinerary_fx"
	"wanderly/cmd/fx/mail_fx"
	"wanderly/cmd/fx/memcache_fx"
	"wanderly/cmd/fx/redis_fx"
	"wanderly/internal/api/controllers"
	"wanderly/internal/infra"
	"wanderly/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		assistant_fx.Module,
		account_fx.Module,
		favorite_fx.Module,
		itinerary_fx.Module,
		chat_fx.Module,
		explore_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	favoriteController *controllers.FavoriteController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	exploreController *controllers.ExploreController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, favoriteController, itineraryController, chatController, exploreController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	favoriteController *controllers.FavoriteController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	exploreController *controllers.ExploreController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/profile", middleware.JWTAuthMiddleware(), accountController.GetProfile)
	accounts.PUT("/profile", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)

	favorites := r.Group("/favorites", middleware.JWTAuthMiddleware())
	favorites.POST("", favoriteController.AddFavorite)
	favorites.GET("", favoriteController.ListFavorites)
	favorites.GET("/check/:destinationId", favoriteController.IsFavorite)
	favorites.DELETE("/:id", favoriteController.RemoveFavorite)

	itineraries := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("", itineraryController.CreateItinerary)
	itineraries.GET("", itineraryController.ListItineraries)
	itineraries.GET("/:id", itineraryController.GetItinerary)
	itineraries.PUT("/:id", itineraryController.UpdateItinerary)
	itineraries.DELETE("/:id", itineraryController.DeleteItinerary)

	chat := r.Group("/chat", middleware.JWTAuthMiddleware())
	chat.POST("/messages", chatController.SendMessage)
	chat.GET("/messages", chatController.ListChatHistory)

	explore := r.Group("/explore")
	explore.POST("/search-sessions", exploreController.CreateSearchSession)
	explore.POST("/search-sessions/:id/input", exploreController.SearchInput)
	explore.GET("/search-sessions/:id", exploreController.SearchSnapshot)
	explore.POST("/search-sessions/:id/select", exploreController.SearchSelect)
	explore.DELETE("/search-sessions/:id", exploreController.DismissSearchSession)
	explore.GET("/cities", exploreController.SearchCities)
	explore.GET("/cities/:id", exploreController.GetCityDetails)
	explore.GET("/weather", exploreController.GetWeather)
	explore.POST("/places/search", exploreController.SearchPlaces)
	explore.GET("/geocode", exploreController.Geocode)
}
