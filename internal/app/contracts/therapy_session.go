package contracts

import (
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type TherapySessionRepository interface {
	Insert(ctx context.Context, session *models.TherapySession) (string, error)
	FindByID(ctx context.Context, sessionID string) (*models.TherapySession, error)
	// FindBookable returns the session only when it belongs to the patient,
	// is paid, has hours remaining and has not expired; nil otherwise.
	FindBookable(ctx context.Context, sessionID, patientID string) (*models.TherapySession, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.TherapySession, error)
	FindByPaymentRef(ctx context.Context, paymentRef string) (*models.TherapySession, error)
	MarkPaid(ctx context.Context, sessionID, paymentRef string, expiryDate time.Time) error
	// ConsumeHours decrements hoursRemaining by amount iff the current value
	// is at least amount. Returns false when the guard fails.
	ConsumeHours(ctx context.Context, sessionID string, amount int) (bool, error)
	// HasOverlappingAppointment reports whether any appointment in any of the
	// therapist's sessions intersects [start, end).
	HasOverlappingAppointment(ctx context.Context, therapistID string, start, end time.Time) (bool, error)
	// CommitAppointment appends the appointment and decrements hoursRemaining
	// by billedHours in a single conditional update. Returns false when the
	// session is no longer bookable or has fewer than billedHours left.
	CommitAppointment(ctx context.Context, sessionID string, appointment models.Appointment, billedHours int) (bool, error)
}

type SessionLedger interface {
	CreateSession(ctx context.Context, patientID, therapistID, planID string) (*models.TherapySession, error)
	MarkPaid(ctx context.Context, sessionID, paymentRef string) error
	FindBookable(ctx context.Context, sessionID, patientID string) (*models.TherapySession, error)
	ConsumeHours(ctx context.Context, sessionID string, amount int) error
	ListPatientSessions(ctx context.Context, patientID string) ([]responses.TherapySession, error)
}

type AppointmentScheduler interface {
	BookAppointment(ctx context.Context, sessionID, patientID, startTime, title string) (*models.Appointment, error)
}
