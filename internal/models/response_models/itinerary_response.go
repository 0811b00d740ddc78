package response_models

type ActivityPlan struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
	Location string `json:"location"`
}

type DayPlan struct {
	Day        int            `json:"day"`
	Title      string         `json:"title"`
	Activities []ActivityPlan `json:"activities"`
	Notes      string         `json:"notes"`
}

// GeneratedItinerary is the output of the deterministic trip planner,
// not yet persisted and carrying no record id.
type GeneratedItinerary struct {
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	Budget      string    `json:"budget"`
	Interests   []string  `json:"interests"`
	Days        []DayPlan `json:"days"`
	Tips        []string  `json:"tips"`
}

type ItineraryResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	Budget      string    `json:"budget"`
	Interests   []string  `json:"interests"`
	Days        []DayPlan `json:"days"`
	Tips        []string  `json:"tips"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}
