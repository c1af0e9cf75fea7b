package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/delivery/http/controllers"
	"confidant-service/internal/app/delivery/http/middlewares"
	"confidant-service/internal/app/delivery/http/routers"
	"confidant-service/internal/app/drivers/database"
	"confidant-service/internal/app/drivers/logger"
	"confidant-service/internal/app/drivers/messaging"
	"confidant-service/internal/app/drivers/storage"
	"confidant-service/internal/app/services/core/appointments"
	"confidant-service/internal/app/services/core/matching"
	"confidant-service/internal/app/services/core/patients"
	"confidant-service/internal/app/services/core/payments"
	"confidant-service/internal/app/services/core/plans"
	"confidant-service/internal/app/services/core/sessions"
	"confidant-service/internal/app/services/core/therapists"
	"confidant-service/internal/app/services/shared/locker"
	"confidant-service/internal/app/services/shared/mailer"
	"confidant-service/internal/app/services/shared/payment_gateway"
	sharedRedis "confidant-service/internal/app/services/shared/redis"
	sharedStorage "confidant-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Infof("Server started on %s", internalConfig.App.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}
	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	objectStorage := sharedStorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	paymentGateway := payment_gateway.NewPaystackService(bootstrap.InternalConfig)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.RabbitMQQueue)
	if err != nil {
		logrus.Fatalf("Error creating mailer service: %v", err)
	}

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	therapistRepository := therapists.NewTherapistMongoRepository(bootstrap.MongoDB, dbName)
	planRepository := plans.NewPlanMongoRepository(bootstrap.MongoDB, dbName)
	sessionRepository := sessions.NewSessionMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)
	matchingUsecase := matching.NewMatchingUsecase(therapistRepository, patientRepository, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	sessionLedger := sessions.NewSessionUsecase(sessionRepository, therapistRepository, patientRepository, planRepository, mailerService, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentScheduler := appointments.NewAppointmentUsecase(sessionLedger, sessionRepository, therapistRepository, lockerService, mailerService, bootstrap.InternalConfig, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(sessionLedger, sessionRepository, patientRepository, planRepository, paymentGateway, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, matchingUsecase, sessionLedger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentScheduler)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	mw := middlewares.New(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		patientController,
		appointmentController,
		paymentController,
	)
}
