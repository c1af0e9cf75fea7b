package controllers

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/requests"
	"confidant-service/internal/pkg/exceptions"
	"confidant-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) InitializePayment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	authSession, err := authSessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.InitializePayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse payment request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	initialized, err := ctrl.PaymentUsecase.InitializePayment(r.Context(), authSession.PatientID, request.SessionID, request.CallbackURL)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InitializePaymentSuccessMessage, initialized)
}

func (ctrl *PaymentController) VerifyCallback(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPaymentNotSuccessful(fmt.Errorf("reference query parameter is empty")))
		return
	}

	if err := ctrl.PaymentUsecase.VerifyCallback(r.Context(), reference); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyPaymentSuccessMessage, nil)
}

func (ctrl *PaymentController) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("Failed to read webhook body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	signature := r.Header.Get(constvars.HeaderPaystackSignature)
	if err := ctrl.PaymentUsecase.HandleWebhook(r.Context(), signature, body); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookReceivedSuccessMessage, nil)
}
