package responses

// InitializePayment is returned after a paystack transaction is created; the
// client follows AuthorizationURL to complete payment.
type InitializePayment struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

// PaystackTransaction is the subset of the paystack verify response the
// service consumes.
type PaystackTransaction struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}
