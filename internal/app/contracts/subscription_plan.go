package contracts

import (
	"confidant-service/internal/app/models"
	"context"
)

type SubscriptionPlanRepository interface {
	FindByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error)
}
