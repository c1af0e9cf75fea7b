package matching

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"confidant-service/internal/app/config"
	"confidant-service/internal/app/contracts"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/dto/responses"
	"confidant-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type matchingUsecase struct {
	TherapistRepository contracts.TherapistRepository
	PatientRepository   contracts.PatientRepository
	ObjectStorage       contracts.ObjectStorage
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	matchingUsecaseInstance contracts.MatchingUsecase
	onceMatchingUsecase     sync.Once
)

func NewMatchingUsecase(
	therapistRepository contracts.TherapistRepository,
	patientRepository contracts.PatientRepository,
	objectStorage contracts.ObjectStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MatchingUsecase {
	onceMatchingUsecase.Do(func() {
		instance := &matchingUsecase{
			TherapistRepository: therapistRepository,
			PatientRepository:   patientRepository,
			ObjectStorage:       objectStorage,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		matchingUsecaseInstance = instance
	})
	return matchingUsecaseInstance
}

func (uc *matchingUsecase) FindMatches(ctx context.Context, patientID string, profile models.PatientProfile, maxActiveSessions int) ([]responses.TherapistSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("matchingUsecase.FindMatches called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if maxActiveSessions <= 0 {
		maxActiveSessions = uc.InternalConfig.Matching.MaxActiveSessions
	}

	candidates, err := uc.TherapistRepository.ListWithActiveSessionCounts(ctx)
	if err != nil {
		uc.Log.Error("matchingUsecase.FindMatches error listing therapists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDependencyUnavailable(err)
	}

	// Capacity filter, scoring and shortlist selection in one pass; the
	// selector keeps only the best ten so large therapist sets are never
	// fully sorted.
	selector := newTopKSelector(constvars.MaxTherapistMatches)
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.ActiveSessionCount >= maxActiveSessions {
			continue
		}
		selector.add(scoredCandidate{
			therapist: candidate,
			score:     TherapistSuitability(&candidate.Therapist, profile),
			order:     i,
		})
	}

	ranked := selector.result()
	summaries := make([]responses.TherapistSummary, 0, len(ranked))
	for _, entry := range ranked {
		summaries = append(summaries, uc.buildTherapistSummary(ctx, &entry.therapist.Therapist))
	}

	uc.Log.Info("matchingUsecase.FindMatches shortlist built",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCandidateCountKey, len(candidates)),
		zap.Int(constvars.LoggingMatchCountKey, len(summaries)),
	)

	// History append is fire and forget; the shortlist never waits on it.
	go uc.appendProfileHistory(patientID, profile)

	return summaries, nil
}

func (uc *matchingUsecase) buildTherapistSummary(ctx context.Context, therapist *models.Therapist) responses.TherapistSummary {
	summary := responses.TherapistSummary{
		ID:             therapist.ID,
		Name:           therapist.Name,
		About:          therapist.About,
		Rating:         therapist.AverageRating,
		WorkExperience: fmt.Sprintf("%d Years", therapist.YearsOfExperience),
		Image:          therapist.Image,
		AvailableTimes: therapist.AvailableTimes,
	}

	// Images stored as object keys get a presigned download URL; anything
	// already resembling a URL passes through untouched.
	if therapist.Image != "" && !strings.HasPrefix(therapist.Image, "http") {
		expiry := time.Duration(uc.InternalConfig.Matching.ImageURLExpiryInHours) * time.Hour
		presignedURL, err := uc.ObjectStorage.PresignedGetURL(ctx, therapist.Image, expiry)
		if err != nil {
			uc.Log.Warn("matchingUsecase.buildTherapistSummary error presigning image",
				zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
				zap.Error(err),
			)
		} else {
			summary.Image = presignedURL
		}
	}

	return summary
}

func (uc *matchingUsecase) appendProfileHistory(patientID string, profile models.PatientProfile) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.PatientRepository.AppendRequestProfile(ctx, patientID, profile); err != nil {
		uc.Log.Warn("matchingUsecase.appendProfileHistory error saving request profile",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
