package controllers

import (
	"fmt"
	"net/http"
	"sync"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/requests"
	"confidant-service/internal/pkg/exceptions"
	"confidant-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                  *zap.Logger
	AppointmentScheduler contracts.AppointmentScheduler
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentScheduler contracts.AppointmentScheduler) *AppointmentController {
	onceAppointmentController.Do(func() {
		instance := &AppointmentController{
			Log:                  logger,
			AppointmentScheduler: appointmentScheduler,
		}
		appointmentControllerInstance = instance
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	authSession, err := authSessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotBookable(fmt.Errorf("session ID missing from URL")))
		return
	}

	request := new(requests.BookAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse appointment request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointment, err := ctrl.AppointmentScheduler.BookAppointment(r.Context(), sessionID, authSession.PatientID, request.Time, request.Title)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccessMessage, appointment)
}
