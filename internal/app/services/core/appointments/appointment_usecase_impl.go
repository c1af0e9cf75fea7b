package appointments

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
	"confidant-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	SessionLedger       contracts.SessionLedger
	SessionRepository   contracts.TherapySessionRepository
	TherapistRepository contracts.TherapistRepository
	LockerService       contracts.LockerService
	MailerService       contracts.MailerService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentScheduler
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	sessionLedger contracts.SessionLedger,
	sessionRepository contracts.TherapySessionRepository,
	therapistRepository contracts.TherapistRepository,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentScheduler {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			SessionLedger:       sessionLedger,
			SessionRepository:   sessionRepository,
			TherapistRepository: therapistRepository,
			LockerService:       lockerService,
			MailerService:       mailerService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, sessionID, patientID, startTime, title string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	start, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return nil, exceptions.ErrAppointmentInvalidTime(err)
	}
	end := start.Add(constvars.AppointmentBlockDuration)

	// The session is looked up once before taking the lock so that requests
	// against unknown or unpaid sessions never contend for it.
	session, err := uc.SessionLedger.FindBookable(ctx, sessionID, patientID)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisTherapistBookingLockFormat, session.TherapistID)
	lockValue, err := uc.acquireBookingLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if unlockErr := uc.LockerService.Unlock(unlockCtx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.BookAppointment error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	// Re-read under the lock; the pre-lock snapshot may be stale by the time
	// the lock is held.
	session, err = uc.SessionLedger.FindBookable(ctx, sessionID, patientID)
	if err != nil {
		return nil, err
	}
	if session.HoursRemaining < constvars.AppointmentBilledHours {
		return nil, exceptions.ErrSessionNotBookable(fmt.Errorf("session %s has %d hours remaining, %d required", sessionID, session.HoursRemaining, constvars.AppointmentBilledHours))
	}

	overlaps, err := uc.SessionRepository.HasOverlappingAppointment(ctx, session.TherapistID, start, end)
	if err != nil {
		return nil, err
	}
	if overlaps {
		uc.Log.Info("appointmentUsecase.BookAppointment slot already taken",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTherapistIDKey, session.TherapistID),
			zap.Time(constvars.LoggingAppointmentStartKey, start),
			zap.Time(constvars.LoggingAppointmentEndKey, end),
		)
		return nil, exceptions.ErrAppointmentTimeConflict(fmt.Errorf("therapist %s already has an appointment overlapping [%s, %s)", session.TherapistID, start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	appointment := models.Appointment{
		ID:        uuid.NewString(),
		StartTime: start,
		EndTime:   end,
		Status:    constvars.AppointmentStatusPending,
		Title:     title,
	}

	committed, err := uc.SessionRepository.CommitAppointment(ctx, sessionID, appointment, constvars.AppointmentBilledHours)
	if err != nil {
		return nil, err
	}
	if !committed {
		return nil, exceptions.ErrSessionNotBookable(fmt.Errorf("session %s became unbookable before the appointment could be committed", sessionID))
	}

	uc.Log.Info("appointmentUsecase.BookAppointment appointment committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingTherapistIDKey, session.TherapistID),
		zap.Time(constvars.LoggingAppointmentStartKey, start),
		zap.Time(constvars.LoggingAppointmentEndKey, end),
	)

	go uc.notifyTherapist(session.TherapistID, appointment)

	return &appointment, nil
}

// acquireBookingLock retries a bounded number of times before giving up and
// reporting the scheduler unavailable for this therapist.
func (uc *appointmentUsecase) acquireBookingLock(ctx context.Context, lockKey string) (string, error) {
	ttl := time.Duration(uc.InternalConfig.Booking.LockTTLInSeconds) * time.Second
	retryDelay := time.Duration(uc.InternalConfig.Booking.LockRetryDelayInMs) * time.Millisecond
	attempts := uc.InternalConfig.Booking.LockRetries + 1

	for attempt := 0; attempt < attempts; attempt++ {
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, ttl)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}
		select {
		case <-ctx.Done():
			return "", exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-time.After(retryDelay):
		}
	}

	uc.Log.Warn("appointmentUsecase.acquireBookingLock lock not acquired",
		zap.String(constvars.LoggingRedisKey, lockKey),
		zap.Int("attempts", attempts),
	)
	return "", exceptions.ErrBookingLockNotAcquired(fmt.Errorf("lock %s still held after %d attempts", lockKey, attempts))
}

func (uc *appointmentUsecase) notifyTherapist(therapistID string, appointment models.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	therapist, err := uc.TherapistRepository.FindByID(ctx, therapistID)
	if err != nil || therapist == nil {
		uc.Log.Warn("appointmentUsecase.notifyTherapist therapist lookup failed",
			zap.String(constvars.LoggingTherapistIDKey, therapistID),
			zap.Error(err),
		)
		return
	}

	payload := &requests.EmailPayload{
		Type:      constvars.EmailTypeAppointmentNotification,
		Recipient: therapist.Email,
		Subject:   constvars.EmailSubjectAppointmentNotification,
		Variables: map[string]string{
			"therapist_name": therapist.Name,
			"title":          appointment.Title,
			"start_time":     appointment.StartTime.Format(time.RFC3339),
			"end_time":       appointment.EndTime.Format(time.RFC3339),
			"frontend_url":   uc.InternalConfig.Mailer.TherapyFrontendURL,
		},
	}

	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("appointmentUsecase.notifyTherapist error publishing email",
			zap.String(constvars.LoggingEmailRecipientKey, therapist.Email),
			zap.Error(err),
		)
	}
}
