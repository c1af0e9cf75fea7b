package models

// PatientProfile is the set of preferences a patient submits with a match
// request. Profiles are kept on the patient record as a deduplicated history
// of what was asked for.
type PatientProfile struct {
	Age      int      `json:"age" bson:"age"`
	Gender   string   `json:"gender" bson:"gender"`
	Religion string   `json:"religion" bson:"religion"`
	Status   string   `json:"status" bson:"status"`
	State    string   `json:"state" bson:"state"`
	Country  string   `json:"country" bson:"country"`
	Problems []string `json:"problems" bson:"problems"`
}

type Patient struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	Name            string           `json:"name" bson:"name"`
	Email           string           `json:"email" bson:"email"`
	RequestProfiles []PatientProfile `json:"requestProfiles,omitempty" bson:"requestProfiles,omitempty"`
	TimeModel       `bson:",inline"`
}
