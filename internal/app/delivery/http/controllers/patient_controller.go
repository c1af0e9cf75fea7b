package controllers

import (
	"net/http"
	"sync"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/requests"
	"confidant-service/internal/pkg/exceptions"
	"confidant-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log             *zap.Logger
	PatientUsecase  contracts.PatientUsecase
	MatchingUsecase contracts.MatchingUsecase
	SessionLedger   contracts.SessionLedger
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(
	logger *zap.Logger,
	patientUsecase contracts.PatientUsecase,
	matchingUsecase contracts.MatchingUsecase,
	sessionLedger contracts.SessionLedger,
) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:             logger,
			PatientUsecase:  patientUsecase,
			MatchingUsecase: matchingUsecase,
			SessionLedger:   sessionLedger,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) GetMe(w http.ResponseWriter, r *http.Request) {
	authSession, err := authSessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.PatientUsecase.GetProfile(r.Context(), authSession.PatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, patient)
}

func (ctrl *PatientController) GetTherapyMatches(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	authSession, err := authSessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.TherapyMatch)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse therapy match request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeTherapyMatchRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	profile := models.PatientProfile{
		Age:      request.Age,
		Gender:   request.Gender,
		Religion: request.Religion,
		Status:   request.Status,
		State:    request.State,
		Country:  request.Country,
		Problems: request.Problems,
	}

	matches, err := ctrl.MatchingUsecase.FindMatches(r.Context(), authSession.PatientID, profile, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildListResponse(w, constvars.StatusOK, constvars.GetTherapyMatchesSuccessMessage, len(matches), matches)
}

func (ctrl *PatientController) SelectTherapy(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	authSession, err := authSessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SelectTherapy)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse therapy selection request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSelectTherapyRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, err := ctrl.SessionLedger.CreateSession(r.Context(), authSession.PatientID, request.TherapistID, request.SubscriptionPlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SelectTherapySuccessMessage, session)
}

func (ctrl *PatientController) GetMySessions(w http.ResponseWriter, r *http.Request) {
	authSession, err := authSessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessions, err := ctrl.SessionLedger.ListPatientSessions(r.Context(), authSession.PatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildListResponse(w, constvars.StatusOK, constvars.GetSessionsSuccessMessage, len(sessions), sessions)
}
