package contracts

import (
	"confidant-service/internal/app/models"
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// TrySetNX sets the key only when absent, returning whether it was set.
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	CreateAuthSession(ctx context.Context, session *models.AuthSession) error
	GetAuthSession(ctx context.Context, sessionID string) (*models.AuthSession, error)
}
