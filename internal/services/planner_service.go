package services

import (
	"fmt"

	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
)

// Day counts per duration label. "4-7 days" mapping to 5 is long-standing
// observable behavior and is kept as-is.
var dayCountByDuration = map[string]int{
	"1-3 days":  3,
	"4-7 days":  5,
	"1-2 weeks": 7,
	"2+ weeks":  7,
}

const defaultDayCount = 3

var interestActivities = []struct {
	tag      string
	activity response_models.ActivityPlan
}{
	{"Food", response_models.ActivityPlan{
		Time:     "09:00",
		Activity: "Food tour through local markets and street food stalls",
		Duration: "3 hours",
		Location: "City center",
	}},
	{"Culture", response_models.ActivityPlan{
		Time:     "11:00",
		Activity: "Visit museums and historic landmarks",
		Duration: "2 hours",
		Location: "Old town",
	}},
	{"Nature", response_models.ActivityPlan{
		Time:     "14:00",
		Activity: "Walk through parks and scenic viewpoints",
		Duration: "2 hours",
		Location: "City park",
	}},
	{"Adventure", response_models.ActivityPlan{
		Time:     "16:00",
		Activity: "Outdoor adventure excursion",
		Duration: "3 hours",
		Location: "Surrounding area",
	}},
}

var genericActivities = []response_models.ActivityPlan{
	{
		Time:     "10:00",
		Activity: "Guided sightseeing around the main attractions",
		Duration: "3 hours",
		Location: "City center",
	},
	{
		Time:     "14:00",
		Activity: "Free time to explore at your own pace",
		Duration: "2 hours",
		Location: "Old town",
	},
}

var eveningActivity = response_models.ActivityPlan{
	Time:     "19:00",
	Activity: "Dinner at a recommended local restaurant",
	Duration: "2 hours",
	Location: "Downtown",
}

const (
	firstDayNote = "Arrive early and take it easy to adjust to the time zone."
	lastDayNote  = "Keep the schedule light and prepare for departure."
	middayNote   = "Enjoy the day at a comfortable pace."
)

var travelTips = []string{
	"Keep digital and paper copies of your travel documents.",
	"Learn a few basic phrases in the local language.",
	"Carry a reusable water bottle and stay hydrated.",
	"Use public transport to get around like a local.",
	"Notify your bank before traveling abroad.",
	"Buy travel insurance before your trip starts.",
}

type PlannerServiceInterface interface {
	GenerateItinerary(request request_models.GenerateItineraryRequest) response_models.GeneratedItinerary
}

type PlannerService struct{}

func NewPlannerService() PlannerServiceInterface {
	return &PlannerService{}
}

// GenerateItinerary is pure and deterministic: no I/O, no randomness. The
// same inputs always produce the same plan.
func (p *PlannerService) GenerateItinerary(request request_models.GenerateItineraryRequest) response_models.GeneratedItinerary {
	dayCount, ok := dayCountByDuration[request.Duration]
	if !ok {
		dayCount = defaultDayCount
	}

	selected := make(map[string]bool, len(request.Interests))
	for _, interest := range request.Interests {
		selected[interest] = true
	}

	days := make([]response_models.DayPlan, 0, dayCount)
	for dayNumber := 1; dayNumber <= dayCount; dayNumber++ {
		var activities []response_models.ActivityPlan
		for _, entry := range interestActivities {
			if selected[entry.tag] {
				activities = append(activities, entry.activity)
			}
		}
		if len(activities) == 0 {
			activities = append(activities, genericActivities...)
		}
		activities = append(activities, eveningActivity)

		notes := middayNote
		switch dayNumber {
		case 1:
			notes = firstDayNote
		case dayCount:
			notes = lastDayNote
		}

		days = append(days, response_models.DayPlan{
			Day:        dayNumber,
			Title:      fmt.Sprintf("Day %d in %s", dayNumber, request.Destination),
			Activities: activities,
			Notes:      notes,
		})
	}

	tips := make([]string, len(travelTips))
	copy(tips, travelTips)

	return response_models.GeneratedItinerary{
		Destination: request.Destination,
		Duration:    request.Duration,
		Budget:      request.Budget,
		Interests:   request.Interests,
		Days:        days,
		Tips:        tips,
	}
}
