package config

import (
	"confidant-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "confidant"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "therapist-images"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Africa/Lagos"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Matching: Matching{
			MaxActiveSessions:     utils.GetEnvInt("MATCHING_MAX_ACTIVE_SESSIONS", 10),
			ImageURLExpiryInHours: utils.GetEnvInt("MATCHING_IMAGE_URL_EXPIRY_IN_HOURS", 24),
		},
		Booking: Booking{
			SessionValidityInDays: utils.GetEnvInt("BOOKING_SESSION_VALIDITY_IN_DAYS", 30),
			LockTTLInSeconds:      utils.GetEnvInt("BOOKING_LOCK_TTL_IN_SECONDS", 5),
			LockRetries:           utils.GetEnvInt("BOOKING_LOCK_RETRIES", 3),
			LockRetryDelayInMs:    utils.GetEnvInt("BOOKING_LOCK_RETRY_DELAY_IN_MS", 100),
		},
		Mailer: Mailer{
			EmailSender:        utils.GetEnvString("MAILER_EMAIL_SENDER", "no-reply@anonymous-confidant.com"),
			RabbitMQQueue:      utils.GetEnvString("MAILER_RABBITMQ_QUEUE", "confidant-mailer"),
			TherapyFrontendURL: utils.GetEnvString("MAILER_THERAPY_FRONTEND_URL", "https://anonymous-confidant.com"),
		},
		Paystack: Paystack{
			BaseUrl:     utils.GetEnvString("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			SecretKey:   utils.GetEnvString("PAYSTACK_SECRET_KEY", ""),
			CallbackURL: utils.GetEnvString("PAYSTACK_CALLBACK_URL", ""),
		},
	}
}
