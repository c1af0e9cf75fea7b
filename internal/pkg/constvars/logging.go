package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingDataKey               = "data"
	LoggingSessionDataKey        = "session_data"
	LoggingQueryParamsKey        = "query_params"
	LoggingResponseKey           = "response"
	LoggingRequestKey            = "request"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingPatientIDKey          = "patient_id"
	LoggingTherapistIDKey        = "therapist_id"
	LoggingSessionIDKey          = "therapy_session_id"
	LoggingPlanIDKey             = "subscription_plan_id"
	LoggingPaymentRefKey         = "payment_ref"
	LoggingCandidateCountKey     = "candidate_count"
	LoggingMatchCountKey         = "match_count"
	LoggingAppointmentStartKey   = "appointment_start"
	LoggingAppointmentEndKey     = "appointment_end"
	LoggingHoursRemainingKey     = "hours_remaining"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueNameKey          = "queue_name"
	LoggingEmailRecipientKey     = "email_recipient"
)
