package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// AddFavorite godoc
// @Summary Save a destination as a favorite
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.AddFavoriteRequest true "Favorite payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [post]
func (f *FavoriteController) AddFavorite(c *gin.Context) {
	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	id, err := f.favoriteService.AddFavorite(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Favorite added successfully")
}

// ListFavorites godoc
// @Summary List the current user's favorites, newest first
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [get]
func (f *FavoriteController) ListFavorites(c *gin.Context) {
	userId := c.GetString("user_id")

	favorites, err := f.favoriteService.ListFavorites(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

// IsFavorite godoc
// @Summary Check whether a destination is already a favorite
// @Tags Favorites
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/check/{destinationId} [get]
func (f *FavoriteController) IsFavorite(c *gin.Context) {
	userId := c.GetString("user_id")
	destinationId := c.Param("destinationId")

	exists, err := f.favoriteService.IsFavorite(c.Request.Context(), userId, destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"is_favorite": exists}, "Favorite check completed")
}

// RemoveFavorite godoc
// @Summary Remove a favorite by id
// @Tags Favorites
// @Produce json
// @Param id path string true "Favorite ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/{id} [delete]
func (f *FavoriteController) RemoveFavorite(c *gin.Context) {
	userId := c.GetString("user_id")
	favoriteId := c.Param("id")

	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), userId, favoriteId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed successfully")
}
