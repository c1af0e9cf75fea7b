package routers

import (
	"fmt"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/delivery/http/controllers"
	"confidant-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	paymentController *controllers.PaymentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, mw, patientController, appointmentController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, mw, paymentController)
			})
		})
	})
}
