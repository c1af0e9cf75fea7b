package responses

// TherapistSummary is the shortlist projection returned by the matcher. All
// preference and scoring inputs are suppressed.
type TherapistSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	About          string   `json:"about"`
	Rating         float64  `json:"rating"`
	WorkExperience string   `json:"work_experience"`
	Image          string   `json:"image,omitempty"`
	AvailableTimes []string `json:"availableTimes,omitempty"`
}
