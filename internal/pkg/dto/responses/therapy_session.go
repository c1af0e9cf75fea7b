package responses

import "time"

type Appointment struct {
	ID        string    `json:"id,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
}

type TherapySession struct {
	ID                 string        `json:"id"`
	PatientID          string        `json:"patient"`
	TherapistID        string        `json:"therapist"`
	SubscriptionPlanID string        `json:"subscriptionPlan"`
	PaymentStatus      string        `json:"paymentStatus"`
	HoursRemaining     int           `json:"hoursRemaining"`
	ExpiryDate         time.Time     `json:"expiryDate"`
	Appointments       []Appointment `json:"appointments"`
	CreatedAt          time.Time     `json:"createdAt"`
}
