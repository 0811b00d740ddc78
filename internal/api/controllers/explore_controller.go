package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreServiceInterface
}

func NewExploreController(exploreService services.ExploreServiceInterface) *ExploreController {
	return &ExploreController{
		exploreService: exploreService,
	}
}

// CreateSearchSession godoc
// @Summary Open a debounced city search session
// @Tags Explore
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /explore/search-sessions [post]
func (e *ExploreController) CreateSearchSession(c *gin.Context) {
	session := e.exploreService.CreateSearchSession()
	utils.RespondSuccess(c, session, "Search session created")
}

// SearchInput godoc
// @Summary Feed query text into a search session
// @Description Each call restarts the debounce window; only the final value is looked up
// @Tags Explore
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SearchSessionInputRequest true "Query payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /explore/search-sessions/{id}/input [post]
func (e *ExploreController) SearchInput(c *gin.Context) {
	var req request_models.SearchSessionInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.exploreService.SearchInput(c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Input accepted")
}

// SearchSnapshot godoc
// @Summary Read the current state and results of a search session
// @Tags Explore
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /explore/search-sessions/{id} [get]
func (e *ExploreController) SearchSnapshot(c *gin.Context) {
	snapshot, err := e.exploreService.SearchSnapshot(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snapshot, "Snapshot fetched successfully")
}

// SearchSelect godoc
// @Summary Select a result and close the session
// @Tags Explore
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SearchSessionSelectRequest true "Selection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /explore/search-sessions/{id}/select [post]
func (e *ExploreController) SearchSelect(c *gin.Context) {
	var req request_models.SearchSessionSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	selection, err := e.exploreService.SearchSelect(c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, selection, "City selected")
}

// DismissSearchSession godoc
// @Summary Dismiss a search session
// @Tags Explore
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /explore/search-sessions/{id} [delete]
func (e *ExploreController) DismissSearchSession(c *gin.Context) {
	e.exploreService.DismissSearchSession(c.Param("id"))
	utils.RespondSuccess(c, nil, "Search session dismissed")
}

// SearchCities godoc
// @Summary Search cities by name prefix
// @Description Queries shorter than three characters return an empty list
// @Tags Explore
// @Produce json
// @Param query query string true "Name prefix"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /explore/cities [get]
func (e *ExploreController) SearchCities(c *gin.Context) {
	cities, err := e.exploreService.SearchCities(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCityDetails godoc
// @Summary Get one city by its external id
// @Tags Explore
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /explore/cities/{id} [get]
func (e *ExploreController) GetCityDetails(c *gin.Context) {
	city, err := e.exploreService.GetCityDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// GetWeather godoc
// @Summary Get current conditions and a 5-day forecast for coordinates
// @Tags Explore
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /explore/weather [get]
func (e *ExploreController) GetWeather(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	weather, err := e.exploreService.GetWeather(c.Request.Context(), lat, lon)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}

// SearchPlaces godoc
// @Summary Search places near optional coordinates
// @Tags Explore
// @Accept json
// @Produce json
// @Param request body request_models.PlacesSearchRequest true "Places search payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /explore/places/search [post]
func (e *ExploreController) SearchPlaces(c *gin.Context) {
	var req request_models.PlacesSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	places, err := e.exploreService.SearchPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// Geocode godoc
// @Summary Geocode a free-text place name
// @Tags Explore
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /explore/geocode [get]
func (e *ExploreController) Geocode(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing place parameter")
		return
	}

	result, err := e.exploreService.Geocode(c.Request.Context(), place)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Geocoding completed")
}
