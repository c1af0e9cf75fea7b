package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY           ContextKey = "sessionID"
)

// Mongo collections
const (
	MongoCollectionPatients          = "patients"
	MongoCollectionTherapists        = "therapists"
	MongoCollectionTherapySessions   = "sessions"
	MongoCollectionSubscriptionPlans = "subscription_plans"
)

// Therapy session payment statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

// Appointment statuses
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment timing. A booked block is two billable hours plus a ten minute
// buffer between consecutive appointments: 2h + (15m * 2) / 3 = 2h10m.
const (
	AppointmentTwoHours       = 2 * time.Hour
	AppointmentFifteenMinutes = 15 * time.Minute
	AppointmentBlockDuration  = AppointmentTwoHours + (AppointmentFifteenMinutes*2)/3
	AppointmentBilledHours    = 2
)

// Redis key formats
const (
	RedisTherapistBookingLockFormat = "booking:lock:therapist:%s"
)

const (
	DefaultMaxActiveSessions = 10
	MaxTherapistMatches      = 10
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
	ResponseUnknown        = "unknown"
)
