package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/contracts"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/requests"
	"confidant-service/internal/pkg/dto/responses"
	"confidant-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	SessionRepository   contracts.TherapySessionRepository
	TherapistRepository contracts.TherapistRepository
	PatientRepository   contracts.PatientRepository
	PlanRepository      contracts.SubscriptionPlanRepository
	MailerService       contracts.MailerService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	sessionUsecaseInstance contracts.SessionLedger
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(
	sessionRepository contracts.TherapySessionRepository,
	therapistRepository contracts.TherapistRepository,
	patientRepository contracts.PatientRepository,
	planRepository contracts.SubscriptionPlanRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionLedger {
	onceSessionUsecase.Do(func() {
		instance := &sessionUsecase{
			SessionRepository:   sessionRepository,
			TherapistRepository: therapistRepository,
			PatientRepository:   patientRepository,
			PlanRepository:      planRepository,
			MailerService:       mailerService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		sessionUsecaseInstance = instance
	})
	return sessionUsecaseInstance
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, patientID, therapistID, planID string) (*models.TherapySession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingTherapistIDKey, therapistID),
		zap.String(constvars.LoggingPlanIDKey, planID),
	)

	therapist, err := uc.TherapistRepository.FindByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	plan, err := uc.PlanRepository.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if therapist == nil || plan == nil {
		uc.Log.Warn("sessionUsecase.CreateSession unknown therapist or plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTherapistIDKey, therapistID),
			zap.String(constvars.LoggingPlanIDKey, planID),
		)
		return nil, exceptions.ErrInvalidTherapistOrPlan(fmt.Errorf("therapist %s or plan %s does not exist", therapistID, planID))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s does not exist", patientID))
	}

	session := &models.TherapySession{
		PatientID:          patientID,
		TherapistID:        therapistID,
		SubscriptionPlanID: planID,
		PaymentStatus:      constvars.PaymentStatusPending,
		HoursRemaining:     plan.Duration,
		Appointments:       []models.Appointment{},
	}

	sessionID, err := uc.SessionRepository.Insert(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID

	uc.Log.Info("sessionUsecase.CreateSession session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingHoursRemainingKey, session.HoursRemaining),
	)

	go uc.sendReservationNotice(patient, therapist, plan)

	return session, nil
}

func (uc *sessionUsecase) MarkPaid(ctx context.Context, sessionID, paymentRef string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	expiryDate := time.Now().AddDate(0, 0, uc.InternalConfig.Booking.SessionValidityInDays)

	if err := uc.SessionRepository.MarkPaid(ctx, sessionID, paymentRef, expiryDate); err != nil {
		return err
	}

	uc.Log.Info("sessionUsecase.MarkPaid session confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingPaymentRefKey, paymentRef),
		zap.Time("expiry_date", expiryDate),
	)
	return nil
}

func (uc *sessionUsecase) FindBookable(ctx context.Context, sessionID, patientID string) (*models.TherapySession, error) {
	session, err := uc.SessionRepository.FindBookable(ctx, sessionID, patientID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotBookable(fmt.Errorf("session %s is not bookable for patient %s", sessionID, patientID))
	}
	return session, nil
}

func (uc *sessionUsecase) ConsumeHours(ctx context.Context, sessionID string, amount int) error {
	consumed, err := uc.SessionRepository.ConsumeHours(ctx, sessionID, amount)
	if err != nil {
		return err
	}
	if !consumed {
		return exceptions.ErrSessionNotBookable(fmt.Errorf("session %s has fewer than %d hours remaining", sessionID, amount))
	}
	return nil
}

func (uc *sessionUsecase) ListPatientSessions(ctx context.Context, patientID string) ([]responses.TherapySession, error) {
	sessionModels, err := uc.SessionRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	sessions := make([]responses.TherapySession, 0, len(sessionModels))
	for i := range sessionModels {
		sessions = append(sessions, buildSessionResponse(&sessionModels[i]))
	}
	return sessions, nil
}

func buildSessionResponse(session *models.TherapySession) responses.TherapySession {
	appointments := make([]responses.Appointment, 0, len(session.Appointments))
	for _, appointment := range session.Appointments {
		appointments = append(appointments, responses.Appointment{
			ID:        appointment.ID,
			StartTime: appointment.StartTime,
			EndTime:   appointment.EndTime,
			Status:    appointment.Status,
			Title:     appointment.Title,
		})
	}
	return responses.TherapySession{
		ID:                 session.ID,
		PatientID:          session.PatientID,
		TherapistID:        session.TherapistID,
		SubscriptionPlanID: session.SubscriptionPlanID,
		PaymentStatus:      session.PaymentStatus,
		HoursRemaining:     session.HoursRemaining,
		ExpiryDate:         session.ExpiryDate,
		Appointments:       appointments,
		CreatedAt:          session.CreatedAt,
	}
}

func (uc *sessionUsecase) sendReservationNotice(patient *models.Patient, therapist *models.Therapist, plan *models.SubscriptionPlan) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payload := &requests.EmailPayload{
		Type:      constvars.EmailTypeReservationNotice,
		Recipient: patient.Email,
		Subject:   constvars.EmailSubjectReservationNotice,
		Variables: map[string]string{
			"patient_name":   patient.Name,
			"therapist_name": therapist.Name,
			"plan_title":     plan.Title,
			"plan_hours":     fmt.Sprintf("%d", plan.Duration),
			"frontend_url":   uc.InternalConfig.Mailer.TherapyFrontendURL,
		},
	}

	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("sessionUsecase.sendReservationNotice error publishing email",
			zap.String(constvars.LoggingEmailRecipientKey, patient.Email),
			zap.Error(err),
		)
	}
}
