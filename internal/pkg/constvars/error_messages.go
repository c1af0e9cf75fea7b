package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be at least %s",
	"lte":      "must be at most %s",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidAppointmentTime        = "please provide a valid time for the appointment"
	ErrClientSessionNotBookable            = "invalid session or session expired"
	ErrClientAppointmentTimeConflict       = "time is already booked, please choose a different time"
	ErrClientInvalidTherapistOrPlan        = "invalid therapist or subscription plan"
	ErrClientDependencyUnavailable         = "service is temporarily unavailable, please try again"
	ErrClientPaymentNotVerified            = "payment could not be verified"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotParseTime          = "cannot parse time value"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "server failed to process"
	ErrDevAuthTokenMissing         = "authorization token missing"
	ErrDevAuthTokenInvalid         = "authorization token invalid or expired"
	ErrDevAuthSigningMethod        = "invalid token signing method"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevTherapistNotFound        = "therapist not found"
	ErrDevSubscriptionPlanNotFound = "subscription plan not found"
	ErrDevPatientNotFound          = "patient not found"
	ErrDevSessionNotBookable       = "therapy session missing, unpaid, exhausted, or expired"
	ErrDevSessionHoursExhausted    = "therapy session has insufficient hours remaining"
	ErrDevAppointmentOverlap       = "appointment overlaps an existing appointment for this therapist"
	ErrDevBookingLockNotAcquired   = "could not acquire therapist booking lock"
	ErrDevPaymentSignatureMismatch = "payment webhook signature mismatch"
	ErrDevPaymentNotSuccessful     = "payment gateway reported a non-successful transaction"
	ErrDevPaymentSessionNotPending = "therapy session is not awaiting payment"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	// Redis
	ErrDevRedisGetNoData  = "redis has no data for key %s"
	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisDeleteData = "redis failed to delete data"
	ErrDevRedisUnlock     = "redis failed to release lock"

	// RabbitMQ
	ErrDevRabbitMQPublish = "rabbitmq failed to publish message to queue %s"

	// Minio
	ErrDevMinioPresignObject = "minio failed to presign object in bucket %s"

	// HTTP client
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode %s response"
)
