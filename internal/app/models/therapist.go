package models

// LocationPreference is the therapist's preferred patient location, matched
// against the submitted profile.
type LocationPreference struct {
	State   string `json:"state" bson:"state"`
	Country string `json:"country" bson:"country"`
}

// AgeRange is the patient age band a therapist accepts. A zero Max means no
// upper bound.
type AgeRange struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
}

func (r AgeRange) Contains(age int) bool {
	if age < r.Min {
		return false
	}
	if r.Max > 0 && age > r.Max {
		return false
	}
	return true
}

type Therapist struct {
	ID                 string             `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email"`
	About              string             `json:"about" bson:"about"`
	Image              string             `json:"image" bson:"image"`
	Specialization     []string           `json:"specialization" bson:"specialization"`
	SexPreference      string             `json:"sexPreference" bson:"sexPreference"`
	ReligionPreference string             `json:"religionPreference" bson:"religionPreference"`
	StatusPreference   string             `json:"statusPreference" bson:"statusPreference"`
	AgeRange           AgeRange           `json:"ageRange" bson:"ageRange"`
	LocationPreference LocationPreference `json:"locationPreference" bson:"locationPreference"`
	YearsOfExperience  int                `json:"years_of_experience" bson:"years_of_experience"`
	AverageRating      float64            `json:"averageRating" bson:"averageRating"`
	AvailableTimes     []string           `json:"availableTimes" bson:"availableTimes"`
	TimeModel          `bson:",inline"`
}

// IsWithinAgeRange reports whether a patient of the given age falls inside
// the therapist's accepted band.
func (t *Therapist) IsWithinAgeRange(age int) bool {
	return t.AgeRange.Contains(age)
}

// TherapistWithActiveSessions is the aggregation shape returned by the
// therapist repository: the therapist document plus the number of currently
// active therapy sessions, used only for capacity filtering.
type TherapistWithActiveSessions struct {
	Therapist          `bson:",inline"`
	ActiveSessionCount int `bson:"activeSessionCount"`
}
