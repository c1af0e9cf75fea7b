package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Matching Matching
	Booking  Booking
	Mailer   Mailer
	Paystack Paystack
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Matching struct {
	// MaxActiveSessions is the capacity cap used when a match request does
	// not carry its own.
	MaxActiveSessions int
	// ImageURLExpiryInHours bounds the lifetime of presigned therapist image
	// URLs in match results.
	ImageURLExpiryInHours int
}

type Booking struct {
	// SessionValidityInDays is the window between payment confirmation and
	// session expiry.
	SessionValidityInDays int
	LockTTLInSeconds      int
	LockRetries           int
	LockRetryDelayInMs    int
}

type Mailer struct {
	EmailSender        string
	RabbitMQQueue      string
	TherapyFrontendURL string
}

type Paystack struct {
	BaseUrl     string
	SecretKey   string
	CallbackURL string
}
