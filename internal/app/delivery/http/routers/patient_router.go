package routers

import (
	"confidant-service/internal/app/delivery/http/controllers"
	"confidant-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	r chi.Router,
	mw *middlewares.Middlewares,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
) {
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.Get("/me", patientController.GetMe)
		r.Get("/me/sessions", patientController.GetMySessions)
		r.Post("/me/therapy-matches", patientController.GetTherapyMatches)
		r.Post("/me/therapy-selection", patientController.SelectTherapy)
		r.Post("/me/sessions/{sessionID}/appointments", appointmentController.BookAppointment)
	})
}
