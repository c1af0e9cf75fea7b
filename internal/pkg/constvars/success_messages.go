package constvars

const (
	GetProfileSuccessMessage        = "profile retrieved successfully"
	GetSessionsSuccessMessage       = "sessions retrieved successfully"
	GetTherapyMatchesSuccessMessage = "therapist matches retrieved successfully"
	SelectTherapySuccessMessage     = "session created successfully"
	BookAppointmentSuccessMessage   = "appointment requested"
	InitializePaymentSuccessMessage = "payment initialized successfully"
	VerifyPaymentSuccessMessage     = "payment verified successfully"
	WebhookReceivedSuccessMessage   = "webhook received"
)
