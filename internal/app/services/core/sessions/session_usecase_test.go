package sessions

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/requests"
	"confidant-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.TherapySession
	nextID   int
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*models.TherapySession{}}
}

func (f *fakeSessionRepository) Insert(ctx context.Context, session *models.TherapySession) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("session-%d", f.nextID)
	stored := *session
	stored.ID = id
	stored.CreatedAt = time.Now()
	f.sessions[id] = &stored
	return id, nil
}

func (f *fakeSessionRepository) FindByID(ctx context.Context, sessionID string) (*models.TherapySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepository) FindBookable(ctx context.Context, sessionID, patientID string) (*models.TherapySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok ||
		session.PatientID != patientID ||
		session.PaymentStatus != constvars.PaymentStatusPaid ||
		session.HoursRemaining <= 0 ||
		!session.ExpiryDate.After(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepository) FindByPatient(ctx context.Context, patientID string) ([]models.TherapySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.TherapySession
	for _, session := range f.sessions {
		if session.PatientID == patientID {
			result = append(result, *session)
		}
	}
	return result, nil
}

func (f *fakeSessionRepository) FindByPaymentRef(ctx context.Context, paymentRef string) (*models.TherapySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		if session.PaymentRef == paymentRef {
			copied := *session
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepository) MarkPaid(ctx context.Context, sessionID, paymentRef string, expiryDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok || session.PaymentStatus != constvars.PaymentStatusPending {
		return exceptions.ErrPaymentSessionNotPending(fmt.Errorf("no pending session %s", sessionID))
	}
	session.PaymentStatus = constvars.PaymentStatusPaid
	session.PaymentRef = paymentRef
	session.ExpiryDate = expiryDate
	return nil
}

func (f *fakeSessionRepository) ConsumeHours(ctx context.Context, sessionID string, amount int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok || session.HoursRemaining < amount {
		return false, nil
	}
	session.HoursRemaining -= amount
	return true, nil
}

func (f *fakeSessionRepository) HasOverlappingAppointment(ctx context.Context, therapistID string, start, end time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		if session.TherapistID != therapistID {
			continue
		}
		for _, appointment := range session.Appointments {
			if appointment.Overlaps(start, end) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeSessionRepository) CommitAppointment(ctx context.Context, sessionID string, appointment models.Appointment, billedHours int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok ||
		session.PaymentStatus != constvars.PaymentStatusPaid ||
		session.HoursRemaining < billedHours ||
		!session.ExpiryDate.After(time.Now()) {
		return false, nil
	}
	session.Appointments = append(session.Appointments, appointment)
	session.HoursRemaining -= billedHours
	return true, nil
}

type fakeTherapistFinder struct {
	therapists map[string]*models.Therapist
}

func (f *fakeTherapistFinder) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	return f.therapists[therapistID], nil
}

func (f *fakeTherapistFinder) ListWithActiveSessionCounts(ctx context.Context) ([]models.TherapistWithActiveSessions, error) {
	return nil, nil
}

type fakePatientFinder struct {
	patients map[string]*models.Patient
}

func (f *fakePatientFinder) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientFinder) AppendRequestProfile(ctx context.Context, patientID string, profile models.PatientProfile) error {
	return nil
}

type fakePlanFinder struct {
	plans map[string]*models.SubscriptionPlan
}

func (f *fakePlanFinder) FindByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	return f.plans[planID], nil
}

type fakeMailer struct {
	sent chan requests.EmailPayload
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan requests.EmailPayload, 8)}
}

func (f *fakeMailer) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	f.sent <- *payload
	return nil
}

func sessionTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Booking: config.Booking{SessionValidityInDays: 30},
		Mailer:  config.Mailer{TherapyFrontendURL: "https://anonymous-confidant.com"},
	}
}

func newTestSessionUsecase(repo *fakeSessionRepository, mailerService *fakeMailer) *sessionUsecase {
	return &sessionUsecase{
		SessionRepository: repo,
		TherapistRepository: &fakeTherapistFinder{therapists: map[string]*models.Therapist{
			"therapist-1": {ID: "therapist-1", Name: "Dr. Ada", Email: "ada@example.com"},
		}},
		PatientRepository: &fakePatientFinder{patients: map[string]*models.Patient{
			"patient-1": {ID: "patient-1", Name: "Sam", Email: "sam@example.com"},
		}},
		PlanRepository: &fakePlanFinder{plans: map[string]*models.SubscriptionPlan{
			"plan-1": {ID: "plan-1", Title: "Starter", Duration: 8, Price: 120},
		}},
		MailerService:  mailerService,
		InternalConfig: sessionTestConfig(),
		Log:            zap.NewNop(),
	}
}

func TestCreateSession(t *testing.T) {
	t.Run("unknown therapist is rejected", func(t *testing.T) {
		uc := newTestSessionUsecase(newFakeSessionRepository(), newFakeMailer())
		_, err := uc.CreateSession(context.Background(), "patient-1", "nope", "plan-1")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidTherapistOrPlan, customErr.ClientMessage)
	})

	t.Run("unknown plan is rejected with the same answer", func(t *testing.T) {
		uc := newTestSessionUsecase(newFakeSessionRepository(), newFakeMailer())
		_, err := uc.CreateSession(context.Background(), "patient-1", "therapist-1", "nope")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidTherapistOrPlan, customErr.ClientMessage)
	})

	t.Run("new session starts pending with the plan's hours", func(t *testing.T) {
		repo := newFakeSessionRepository()
		mailerService := newFakeMailer()
		uc := newTestSessionUsecase(repo, mailerService)

		session, err := uc.CreateSession(context.Background(), "patient-1", "therapist-1", "plan-1")
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, constvars.PaymentStatusPending, session.PaymentStatus)
		assert.Equal(t, 8, session.HoursRemaining)
		assert.True(t, session.ExpiryDate.IsZero())

		select {
		case email := <-mailerService.sent:
			assert.Equal(t, constvars.EmailTypeReservationNotice, email.Type)
			assert.Equal(t, "sam@example.com", email.Recipient)
		case <-time.After(2 * time.Second):
			t.Fatal("reservation notice was never sent")
		}
	})
}

func TestMarkPaidSetsExpiry(t *testing.T) {
	repo := newFakeSessionRepository()
	uc := newTestSessionUsecase(repo, newFakeMailer())

	session, err := uc.CreateSession(context.Background(), "patient-1", "therapist-1", "plan-1")
	require.NoError(t, err)

	require.NoError(t, uc.MarkPaid(context.Background(), session.ID, "cfd-ref-1"))

	stored := repo.sessions[session.ID]
	assert.Equal(t, constvars.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, "cfd-ref-1", stored.PaymentRef)
	expected := time.Now().AddDate(0, 0, 30)
	assert.WithinDuration(t, expected, stored.ExpiryDate, time.Minute)
}

func TestFindBookableCollapsesFailureReasons(t *testing.T) {
	repo := newFakeSessionRepository()
	uc := newTestSessionUsecase(repo, newFakeMailer())

	pending, err := uc.CreateSession(context.Background(), "patient-1", "therapist-1", "plan-1")
	require.NoError(t, err)

	expired := &models.TherapySession{
		PatientID:      "patient-1",
		TherapistID:    "therapist-1",
		PaymentStatus:  constvars.PaymentStatusPaid,
		HoursRemaining: 4,
		ExpiryDate:     time.Now().Add(-time.Hour),
	}
	expiredID, err := repo.Insert(context.Background(), expired)
	require.NoError(t, err)

	cases := map[string]string{
		"missing session": "no-such-session",
		"unpaid session":  pending.ID,
		"expired session": expiredID,
	}
	for name, sessionID := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.FindBookable(context.Background(), sessionID, "patient-1")
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
			assert.Equal(t, constvars.ErrClientSessionNotBookable, customErr.ClientMessage)
		})
	}

	t.Run("another patient's session is indistinguishable from a missing one", func(t *testing.T) {
		repo.sessions[pending.ID].PaymentStatus = constvars.PaymentStatusPaid
		repo.sessions[pending.ID].ExpiryDate = time.Now().Add(24 * time.Hour)

		_, err := uc.FindBookable(context.Background(), pending.ID, "patient-2")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientSessionNotBookable, customErr.ClientMessage)
	})
}

func TestConsumeHours(t *testing.T) {
	repo := newFakeSessionRepository()
	uc := newTestSessionUsecase(repo, newFakeMailer())

	session, err := uc.CreateSession(context.Background(), "patient-1", "therapist-1", "plan-1")
	require.NoError(t, err)

	require.NoError(t, uc.ConsumeHours(context.Background(), session.ID, 2))
	assert.Equal(t, 6, repo.sessions[session.ID].HoursRemaining)

	require.NoError(t, uc.ConsumeHours(context.Background(), session.ID, 6))
	assert.Equal(t, 0, repo.sessions[session.ID].HoursRemaining)

	err = uc.ConsumeHours(context.Background(), session.ID, 1)
	require.Error(t, err)
	assert.Equal(t, 0, repo.sessions[session.ID].HoursRemaining)
}

func TestListPatientSessions(t *testing.T) {
	repo := newFakeSessionRepository()
	uc := newTestSessionUsecase(repo, newFakeMailer())

	session, err := uc.CreateSession(context.Background(), "patient-1", "therapist-1", "plan-1")
	require.NoError(t, err)
	_, err = uc.CreateSession(context.Background(), "patient-1", "therapist-1", "plan-1")
	require.NoError(t, err)

	listed, err := uc.ListPatientSessions(context.Background(), "patient-1")
	require.NoError(t, err)
	require.Len(t, listed, 2)

	ids := []string{listed[0].ID, listed[1].ID}
	assert.Contains(t, ids, session.ID)
	for _, s := range listed {
		assert.Equal(t, "patient-1", s.PatientID)
		assert.Equal(t, constvars.PaymentStatusPending, s.PaymentStatus)
	}
}
