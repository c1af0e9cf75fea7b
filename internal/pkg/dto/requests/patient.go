package requests

// TherapyMatch carries the preference profile a patient submits when asking
// for therapist recommendations.
type TherapyMatch struct {
	Age      int      `json:"age" validate:"required,gte=0,lte=120"`
	Gender   string   `json:"gender" validate:"omitempty,max=32"`
	Religion string   `json:"religion" validate:"omitempty,max=64"`
	Status   string   `json:"status" validate:"omitempty,max=64"`
	State    string   `json:"state" validate:"omitempty,max=64"`
	Country  string   `json:"country" validate:"omitempty,max=64"`
	Problems []string `json:"problems" validate:"omitempty,dive,max=64"`
}

// SelectTherapy creates a pending therapy session for the selected therapist
// and subscription plan.
type SelectTherapy struct {
	TherapistID        string `json:"therapistID" validate:"required"`
	SubscriptionPlanID string `json:"subscriptionPlan" validate:"required"`
}

// BookAppointment requests a time block inside a paid therapy session.
type BookAppointment struct {
	Time  string `json:"time" validate:"required"`
	Title string `json:"title" validate:"omitempty,max=128"`
}
