package contracts

import (
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/dto/responses"
	"context"
)

type MatchingUsecase interface {
	// FindMatches returns up to ten therapists ranked by suitability against
	// the profile, excluding therapists at or over maxActiveSessions. Pass
	// maxActiveSessions <= 0 for the configured default.
	FindMatches(ctx context.Context, patientID string, profile models.PatientProfile, maxActiveSessions int) ([]responses.TherapistSummary, error)
}
