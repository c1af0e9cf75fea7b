package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTherapistRepository struct {
	therapists []models.TherapistWithActiveSessions
	listErr    error
}

func (f *fakeTherapistRepository) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	for i := range f.therapists {
		if f.therapists[i].ID == therapistID {
			return &f.therapists[i].Therapist, nil
		}
	}
	return nil, nil
}

func (f *fakeTherapistRepository) ListWithActiveSessionCounts(ctx context.Context) ([]models.TherapistWithActiveSessions, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.therapists, nil
}

type fakePatientRepository struct {
	appended chan models.PatientProfile
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{appended: make(chan models.PatientProfile, 8)}
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return &models.Patient{ID: patientID, Email: "patient@example.com"}, nil
}

func (f *fakePatientRepository) AppendRequestProfile(ctx context.Context, patientID string, profile models.PatientProfile) error {
	f.appended <- profile
	return nil
}

type fakeObjectStorage struct{}

func (f *fakeObjectStorage) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	return "https://storage.example.com/" + objectKey, nil
}

func matchingTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Matching: config.Matching{
			MaxActiveSessions:     10,
			ImageURLExpiryInHours: 24,
		},
	}
}

func newTestMatchingUsecase(therapistRepo *fakeTherapistRepository, patientRepo *fakePatientRepository) *matchingUsecase {
	return &matchingUsecase{
		TherapistRepository: therapistRepo,
		PatientRepository:   patientRepo,
		ObjectStorage:       &fakeObjectStorage{},
		InternalConfig:      matchingTestConfig(),
		Log:                 zap.NewNop(),
	}
}

func therapistWithCount(id string, years, activeSessions int) models.TherapistWithActiveSessions {
	return models.TherapistWithActiveSessions{
		Therapist: models.Therapist{
			ID:                id,
			Name:              "Therapist " + id,
			YearsOfExperience: years,
		},
		ActiveSessionCount: activeSessions,
	}
}

func TestFindMatchesCapacityFilter(t *testing.T) {
	therapistRepo := &fakeTherapistRepository{
		therapists: []models.TherapistWithActiveSessions{
			therapistWithCount("at-capacity", 9, 10),
			therapistWithCount("just-below", 1, 9),
			therapistWithCount("free", 2, 0),
		},
	}
	uc := newTestMatchingUsecase(therapistRepo, newFakePatientRepository())

	matches, err := uc.FindMatches(context.Background(), "patient-1", models.PatientProfile{Age: 30}, 0)
	require.NoError(t, err)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	assert.NotContains(t, ids, "at-capacity")
	assert.Contains(t, ids, "just-below")
	assert.Contains(t, ids, "free")
}

func TestFindMatchesRankingAndTruncation(t *testing.T) {
	therapists := make([]models.TherapistWithActiveSessions, 0, 15)
	for i := 0; i < 15; i++ {
		therapists = append(therapists, therapistWithCount(fmt.Sprintf("t-%02d", i), i, 0))
	}
	therapistRepo := &fakeTherapistRepository{therapists: therapists}
	uc := newTestMatchingUsecase(therapistRepo, newFakePatientRepository())

	matches, err := uc.FindMatches(context.Background(), "patient-1", models.PatientProfile{Age: 30}, 0)
	require.NoError(t, err)

	require.Len(t, matches, constvars.MaxTherapistMatches)
	// Years of experience dominates here, so the most experienced lead.
	assert.Equal(t, "t-14", matches[0].ID)
	assert.Equal(t, "t-05", matches[9].ID)
	assert.Equal(t, "14 Years", matches[0].WorkExperience)
}

func TestFindMatchesStableTies(t *testing.T) {
	therapistRepo := &fakeTherapistRepository{
		therapists: []models.TherapistWithActiveSessions{
			therapistWithCount("first", 5, 0),
			therapistWithCount("second", 5, 0),
			therapistWithCount("third", 5, 0),
		},
	}
	uc := newTestMatchingUsecase(therapistRepo, newFakePatientRepository())

	for run := 0; run < 3; run++ {
		matches, err := uc.FindMatches(context.Background(), "patient-1", models.PatientProfile{Age: 30}, 0)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "first", matches[0].ID)
		assert.Equal(t, "second", matches[1].ID)
		assert.Equal(t, "third", matches[2].ID)
	}
}

func TestFindMatchesAppendsRequestProfile(t *testing.T) {
	therapistRepo := &fakeTherapistRepository{}
	patientRepo := newFakePatientRepository()
	uc := newTestMatchingUsecase(therapistRepo, patientRepo)

	profile := models.PatientProfile{Age: 30, Problems: []string{"anxiety"}}
	_, err := uc.FindMatches(context.Background(), "patient-1", profile, 0)
	require.NoError(t, err)

	select {
	case appended := <-patientRepo.appended:
		assert.Equal(t, profile, appended)
	case <-time.After(2 * time.Second):
		t.Fatal("request profile was never appended")
	}
}

func TestFindMatchesPresignsImageKeys(t *testing.T) {
	therapists := []models.TherapistWithActiveSessions{
		therapistWithCount("with-key", 1, 0),
		therapistWithCount("with-url", 1, 0),
	}
	therapists[0].Image = "images/with-key.png"
	therapists[1].Image = "https://cdn.example.com/with-url.png"
	therapistRepo := &fakeTherapistRepository{therapists: therapists}
	uc := newTestMatchingUsecase(therapistRepo, newFakePatientRepository())

	matches, err := uc.FindMatches(context.Background(), "patient-1", models.PatientProfile{Age: 30}, 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	byID := map[string]string{}
	for _, m := range matches {
		byID[m.ID] = m.Image
	}
	assert.Equal(t, "https://storage.example.com/images/with-key.png", byID["with-key"])
	assert.Equal(t, "https://cdn.example.com/with-url.png", byID["with-url"])
}

func TestFindMatchesListFailure(t *testing.T) {
	therapistRepo := &fakeTherapistRepository{listErr: errors.New("connection refused")}
	uc := newTestMatchingUsecase(therapistRepo, newFakePatientRepository())

	_, err := uc.FindMatches(context.Background(), "patient-1", models.PatientProfile{Age: 30}, 0)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
}
