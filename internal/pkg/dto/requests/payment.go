package requests

// InitializePayment starts a paystack transaction for a pending therapy
// session.
type InitializePayment struct {
	SessionID   string `json:"sessionID" validate:"required"`
	CallbackURL string `json:"callbackURL" validate:"omitempty,url"`
}

// PaystackWebhookEvent is the subset of the paystack event envelope the
// service consumes.
type PaystackWebhookEvent struct {
	Event string              `json:"event"`
	Data  PaystackWebhookData `json:"data"`
}

type PaystackWebhookData struct {
	Reference string                 `json:"reference"`
	Status    string                 `json:"status"`
	Amount    int64                  `json:"amount"`
	Metadata  map[string]interface{} `json:"metadata"`
}
