package models

import "time"

// Appointment is a scheduled time block inside a therapy session. Start and
// end are immutable once created; there is no reschedule operation.
type Appointment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	StartTime time.Time `json:"start_time" bson:"start_time"`
	EndTime   time.Time `json:"end_time" bson:"end_time"`
	Status    string    `json:"status" bson:"status"`
	Title     string    `json:"title" bson:"title"`
}

// Overlaps reports whether two half-open intervals [s1,e1) and [s2,e2)
// intersect: s1 < e2 && s2 < e1.
func (a Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

// TherapySession is a purchased engagement between one patient and one
// therapist. It becomes bookable only after payment confirmation and stays
// bookable while hours remain and the expiry date is in the future.
type TherapySession struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	PatientID          string        `json:"patient" bson:"patient"`
	TherapistID        string        `json:"therapist" bson:"therapist"`
	SubscriptionPlanID string        `json:"subscriptionPlan" bson:"subscriptionPlan"`
	PaymentStatus      string        `json:"paymentStatus" bson:"paymentStatus"`
	PaymentRef         string        `json:"paymentRef" bson:"paymentRef"`
	HoursRemaining     int           `json:"hoursRemaining" bson:"hoursRemaining"`
	ExpiryDate         time.Time     `json:"expiryDate" bson:"expiryDate"`
	Appointments       []Appointment `json:"appointments" bson:"appointments"`
	Notes              string        `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel          `bson:",inline"`
}
