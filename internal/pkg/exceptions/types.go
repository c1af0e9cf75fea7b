package exceptions

import (
	"confidant-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAppointmentTime, constvars.ErrDevCannotParseTime)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}

	// Matching & booking domain
	ErrInvalidTherapistOrPlan = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidTherapistOrPlan, constvars.ErrDevTherapistNotFound)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevPatientNotFound)
	}
	// ErrSessionNotBookable deliberately collapses missing, unpaid, exhausted
	// and expired sessions into one client-facing answer.
	ErrSessionNotBookable = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientSessionNotBookable, constvars.ErrDevSessionNotBookable)
	}
	ErrAppointmentInvalidTime = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAppointmentTime, constvars.ErrDevCannotParseTime)
	}
	ErrAppointmentTimeConflict = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientAppointmentTimeConflict, constvars.ErrDevAppointmentOverlap)
	}
	ErrBookingLockNotAcquired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusServiceUnavailable, constvars.ErrClientDependencyUnavailable, constvars.ErrDevBookingLockNotAcquired)
	}
	ErrDependencyUnavailable = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusServiceUnavailable, constvars.ErrClientDependencyUnavailable, constvars.ErrDevServerProcess)
	}

	// Payments
	ErrPaymentSignatureMismatch = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientPaymentNotVerified, constvars.ErrDevPaymentSignatureMismatch)
	}
	ErrPaymentNotSuccessful = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientPaymentNotVerified, constvars.ErrDevPaymentNotSuccessful)
	}
	ErrPaymentSessionNotPending = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientPaymentNotVerified, constvars.ErrDevPaymentSessionNotPending)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Minio
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
	}

	// HTTP client
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientDependencyUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientDependencyUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
)
