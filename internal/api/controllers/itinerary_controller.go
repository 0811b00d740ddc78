package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	plannerService   services.PlannerServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	plannerService services.PlannerServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		plannerService:   plannerService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary from trip preferences
// @Description Deterministic generation; nothing is persisted until the caller saves the result
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan := i.plannerService.GenerateItinerary(req)
	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}

// CreateItinerary godoc
// @Summary Save an itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	id, err := i.itineraryService.CreateItinerary(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary created successfully")
}

// ListItineraries godoc
// @Summary List the current user's itineraries, newest first
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	userId := c.GetString("user_id")

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItinerary godoc
// @Summary Get one itinerary by id
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	userId := c.GetString("user_id")
	itineraryId := c.Param("id")

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), userId, itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// UpdateItinerary godoc
// @Summary Update an itinerary
// @Description Partial update; omitted fields keep their stored values
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Itinerary patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [put]
func (i *ItineraryController) UpdateItinerary(c *gin.Context) {
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")
	itineraryId := c.Param("id")

	if err := i.itineraryService.UpdateItinerary(c.Request.Context(), userId, itineraryId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	userId := c.GetString("user_id")
	itineraryId := c.Param("id")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), userId, itineraryId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
