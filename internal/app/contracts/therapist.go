package contracts

import (
	"confidant-service/internal/app/models"
	"context"
)

type TherapistRepository interface {
	FindByID(ctx context.Context, therapistID string) (*models.Therapist, error)
	// ListWithActiveSessionCounts returns every therapist together with the
	// number of currently active therapy sessions, in stable storage order.
	ListWithActiveSessionCounts(ctx context.Context) ([]models.TherapistWithActiveSessions, error)
}
