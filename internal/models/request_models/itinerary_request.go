package request_models

type ActivityInput struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
	Location string `json:"location"`
}

type DayInput struct {
	Day        int             `json:"day"`
	Title      string          `json:"title"`
	Activities []ActivityInput `json:"activities"`
	Notes      string          `json:"notes"`
}

type CreateItineraryRequest struct {
	Destination string     `json:"destination" binding:"required"`
	Duration    string     `json:"duration"`
	Budget      string     `json:"budget"`
	Interests   []string   `json:"interests"`
	Days        []DayInput `json:"days"`
	Tips        []string   `json:"tips"`
}

// UpdateItineraryRequest is a partial patch: nil fields are left untouched.
type UpdateItineraryRequest struct {
	Destination *string     `json:"destination,omitempty"`
	Duration    *string     `json:"duration,omitempty"`
	Budget      *string     `json:"budget,omitempty"`
	Interests   *[]string   `json:"interests,omitempty"`
	Days        *[]DayInput `json:"days,omitempty"`
	Tips        *[]string   `json:"tips,omitempty"`
}

type GenerateItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
}
