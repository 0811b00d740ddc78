package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, userId string, request request_models.CreateItineraryRequest) (string, error)
	GetItinerary(ctx context.Context, userId string, itineraryId string) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, userId string) ([]response_models.ItineraryResponse, error)
	UpdateItinerary(ctx context.Context, userId string, itineraryId string, patch request_models.UpdateItineraryRequest) error
	DeleteItinerary(ctx context.Context, userId string, itineraryId string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, userId string, request request_models.CreateItineraryRequest) (string, error) {
	ownerId, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrUnauthenticated
	}
	if request.Destination == "" {
		return "", fmt.Errorf("%w: destination is required", utils.ErrValidation)
	}

	itinerary := &db_models.Itinerary{
		UserID:      ownerId,
		Destination: request.Destination,
		Duration:    request.Duration,
		Budget:      request.Budget,
		Interests:   request.Interests,
		Tips:        request.Tips,
		Days:        buildDayModels(request.Days),
	}

	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		log.Printf("Error inserting itinerary: %v", err)
		return "", utils.ErrDatabaseError
	}

	return itinerary.ID.String(), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, userId string, itineraryId string) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.findOwned(ctx, userId, itineraryId)
	if err != nil {
		return nil, err
	}

	out := buildItineraryResponse(itinerary)
	return &out, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userId string) ([]response_models.ItineraryResponse, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return nil, utils.ErrUnauthenticated
	}

	itineraries, err := s.itineraryRepo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, buildItineraryResponse(&itineraries[i]))
	}

	return out, nil
}

// UpdateItinerary applies a partial patch to an owned record. Every
// successful patch refreshes the updated-at timestamp (gorm hook).
func (s *ItineraryService) UpdateItinerary(ctx context.Context, userId string, itineraryId string, patch request_models.UpdateItineraryRequest) error {
	itinerary, err := s.findOwned(ctx, userId, itineraryId)
	if err != nil {
		return err
	}

	if patch.Destination != nil {
		if *patch.Destination == "" {
			return fmt.Errorf("%w: destination cannot be empty", utils.ErrValidation)
		}
		itinerary.Destination = *patch.Destination
	}
	if patch.Duration != nil {
		itinerary.Duration = *patch.Duration
	}
	if patch.Budget != nil {
		itinerary.Budget = *patch.Budget
	}
	if patch.Interests != nil {
		itinerary.Interests = *patch.Interests
	}
	if patch.Tips != nil {
		itinerary.Tips = *patch.Tips
	}

	if patch.Days != nil {
		days := buildDayModels(*patch.Days)
		for i := range days {
			days[i].ItineraryID = itinerary.ID
		}
		if err := s.itineraryRepo.ReplaceDays(ctx, itineraryId, days); err != nil {
			log.Printf("Error replacing itinerary days: %v", err)
			return utils.ErrDatabaseError
		}
	}

	itinerary.Days = nil // day rows are managed by ReplaceDays
	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, userId string, itineraryId string) error {
	if _, err := s.findOwned(ctx, userId, itineraryId); err != nil {
		return err
	}

	if err := s.itineraryRepo.Delete(ctx, itineraryId); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// findOwned collapses "missing" and "not owned" into one error.
func (s *ItineraryService) findOwned(ctx context.Context, userId string, itineraryId string) (*db_models.Itinerary, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return nil, utils.ErrUnauthenticated
	}

	itinerary, err := s.itineraryRepo.FindById(ctx, itineraryId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil || itinerary.UserID.String() != userId {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	return itinerary, nil
}

func buildDayModels(days []request_models.DayInput) []db_models.ItineraryDay {
	out := make([]db_models.ItineraryDay, 0, len(days))
	for _, day := range days {
		activities := make([]db_models.ItineraryActivity, 0, len(day.Activities))
		for position, activity := range day.Activities {
			activities = append(activities, db_models.ItineraryActivity{
				Position: position,
				Time:     activity.Time,
				Activity: activity.Activity,
				Duration: activity.Duration,
				Location: activity.Location,
			})
		}
		out = append(out, db_models.ItineraryDay{
			DayNumber:  day.Day,
			Title:      day.Title,
			Notes:      day.Notes,
			Activities: activities,
		})
	}
	return out
}

func buildItineraryResponse(itinerary *db_models.Itinerary) response_models.ItineraryResponse {
	days := make([]response_models.DayPlan, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		activities := make([]response_models.ActivityPlan, 0, len(day.Activities))
		for _, activity := range day.Activities {
			activities = append(activities, response_models.ActivityPlan{
				Time:     activity.Time,
				Activity: activity.Activity,
				Duration: activity.Duration,
				Location: activity.Location,
			})
		}
		days = append(days, response_models.DayPlan{
			Day:        day.DayNumber,
			Title:      day.Title,
			Activities: activities,
			Notes:      day.Notes,
		})
	}

	return response_models.ItineraryResponse{
		ID:          itinerary.ID.String(),
		Destination: itinerary.Destination,
		Duration:    itinerary.Duration,
		Budget:      itinerary.Budget,
		Interests:   itinerary.Interests,
		Days:        days,
		Tips:        itinerary.Tips,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(itinerary.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(itinerary.UpdatedAt)),
	}
}
