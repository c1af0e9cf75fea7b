package models

type SubscriptionPlan struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Title    string  `json:"title" bson:"title"`
	Duration int     `json:"duration" bson:"duration"` // purchased hours
	Price    float64 `json:"price" bson:"price"`       // in dollars
	Discount float64 `json:"discount" bson:"discount"`
}
