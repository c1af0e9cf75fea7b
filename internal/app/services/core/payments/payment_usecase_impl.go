package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/contracts"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/requests"
	"confidant-service/internal/pkg/dto/responses"
	"confidant-service/internal/pkg/exceptions"
	"confidant-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const paystackChargeSuccessEvent = "charge.success"

type paymentUsecase struct {
	SessionLedger     contracts.SessionLedger
	SessionRepository contracts.TherapySessionRepository
	PatientRepository contracts.PatientRepository
	PlanRepository    contracts.SubscriptionPlanRepository
	PaymentGateway    contracts.PaymentGatewayService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	sessionLedger contracts.SessionLedger,
	sessionRepository contracts.TherapySessionRepository,
	patientRepository contracts.PatientRepository,
	planRepository contracts.SubscriptionPlanRepository,
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			SessionLedger:     sessionLedger,
			SessionRepository: sessionRepository,
			PatientRepository: patientRepository,
			PlanRepository:    planRepository,
			PaymentGateway:    paymentGateway,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) InitializePayment(ctx context.Context, patientID, sessionID, callbackURL string) (*responses.InitializePayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.InitializePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PatientID != patientID {
		return nil, exceptions.ErrSessionNotBookable(fmt.Errorf("session %s does not exist for patient %s", sessionID, patientID))
	}
	if session.PaymentStatus != constvars.PaymentStatusPending {
		return nil, exceptions.ErrPaymentSessionNotPending(fmt.Errorf("session %s has payment status %s", sessionID, session.PaymentStatus))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s does not exist", patientID))
	}

	plan, err := uc.PlanRepository.FindByID(ctx, session.SubscriptionPlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrInvalidTherapistOrPlan(fmt.Errorf("plan %s does not exist", session.SubscriptionPlanID))
	}

	if callbackURL == "" {
		callbackURL = uc.InternalConfig.Paystack.CallbackURL
	}

	reference := utils.GeneratePaymentReference(sessionID)
	amountKobo := chargeableAmountKobo(plan.Price, plan.Discount)

	initialized, err := uc.PaymentGateway.InitializeTransaction(ctx, patient.Email, amountKobo, reference, callbackURL)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.InitializePayment transaction created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingPaymentRefKey, initialized.Reference),
	)
	return initialized, nil
}

func (uc *paymentUsecase) VerifyCallback(ctx context.Context, reference string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	transaction, err := uc.PaymentGateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return err
	}
	if transaction.Status != "success" {
		return exceptions.ErrPaymentNotSuccessful(fmt.Errorf("transaction %s has status %s", reference, transaction.Status))
	}

	uc.Log.Info("paymentUsecase.VerifyCallback transaction verified",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentRefKey, reference),
	)
	return uc.confirmPayment(ctx, reference)
}

func (uc *paymentUsecase) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !uc.verifySignature(signature, body) {
		return exceptions.ErrPaymentSignatureMismatch(fmt.Errorf("webhook signature does not match request body"))
	}

	var event requests.PaystackWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if event.Event != paystackChargeSuccessEvent {
		uc.Log.Info("paymentUsecase.HandleWebhook event ignored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("event", event.Event),
		)
		return nil
	}
	if event.Data.Status != "success" {
		return exceptions.ErrPaymentNotSuccessful(fmt.Errorf("webhook reference %s has status %s", event.Data.Reference, event.Data.Status))
	}

	uc.Log.Info("paymentUsecase.HandleWebhook charge confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentRefKey, event.Data.Reference),
	)
	return uc.confirmPayment(ctx, event.Data.Reference)
}

// confirmPayment marks the referenced session paid. Confirmations arrive from
// both the callback and the webhook; the pending-only guard in MarkPaid makes
// the second arrival a no-op failure that is swallowed here.
func (uc *paymentUsecase) confirmPayment(ctx context.Context, reference string) error {
	sessionID, err := sessionIDFromReference(reference)
	if err != nil {
		return exceptions.ErrPaymentNotSuccessful(err)
	}

	err = uc.SessionLedger.MarkPaid(ctx, sessionID, reference)
	if customErr, ok := err.(*exceptions.CustomError); ok && strings.HasPrefix(customErr.DevMessage, constvars.ErrDevPaymentSessionNotPending) {
		session, findErr := uc.SessionRepository.FindByPaymentRef(ctx, reference)
		if findErr == nil && session != nil && session.PaymentStatus == constvars.PaymentStatusPaid {
			uc.Log.Info("paymentUsecase.confirmPayment already confirmed",
				zap.String(constvars.LoggingPaymentRefKey, reference),
			)
			return nil
		}
	}
	return err
}

func (uc *paymentUsecase) verifySignature(signature string, body []byte) bool {
	mac := hmac.New(sha512.New, []byte(uc.InternalConfig.Paystack.SecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// sessionIDFromReference recovers the session ID from a reference produced by
// utils.GeneratePaymentReference.
func sessionIDFromReference(reference string) (string, error) {
	trimmed, ok := strings.CutPrefix(reference, "cfd-")
	if !ok {
		return "", fmt.Errorf("reference %s is not in the expected format", reference)
	}
	idx := strings.LastIndex(trimmed, "-")
	if idx <= 0 {
		return "", fmt.Errorf("reference %s is not in the expected format", reference)
	}
	return trimmed[:idx], nil
}

// chargeableAmountKobo converts a discounted dollar price to the gateway's
// smallest currency unit.
func chargeableAmountKobo(price, discountPercent float64) int64 {
	chargeable := price * (100 - discountPercent) / 100
	if chargeable < 0 {
		chargeable = 0
	}
	return int64(chargeable * 100)
}
